package combat

import (
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// expPerLevel is the fixed experience threshold consumed per level
const expPerLevel = 100

// LevelUpResult reports the outcome of applying gained experience
type LevelUpResult struct {
	NewLevel     int32
	NewExp       int32
	LeveledUp    bool
	LevelsGained int32
}

// CheckLevelUp applies gained experience to a character's level and
// remaining exp. The loop is bounded by the exp input; on return NewExp is
// always below the threshold.
func CheckLevelUp(currentLevel, currentExp, expGained int32) *LevelUpResult {
	level := currentLevel
	exp := currentExp + expGained

	var gained int32
	for exp >= expPerLevel {
		exp -= expPerLevel
		level++
		gained++
	}

	return &LevelUpResult{
		NewLevel:     level,
		NewExp:       exp,
		LeveledUp:    gained > 0,
		LevelsGained: gained,
	}
}

// LevelUpStatBonus returns the stat growth for the given number of levels:
// +1 str/agi/int/luck, +10 hp and +5 mp per level
func LevelUpStatBonus(levelsGained int32) vygddrasil.Stats {
	return vygddrasil.Stats{
		Str:  levelsGained,
		Agi:  levelsGained,
		Int:  levelsGained,
		HP:   levelsGained * 10,
		MP:   levelsGained * 5,
		Luck: levelsGained,
	}
}
