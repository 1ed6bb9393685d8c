package testutils

import (
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Sigrid"

// CreateTestCharacter creates a test character with sensible defaults: a
// level 1 warrior with no bonus stats
func CreateTestCharacter(playerID string) *vygddrasil.Character {
	return &vygddrasil.Character{
		ID:       "char-test-001",
		PlayerID: playerID,
		Name:     TestCharacterName,
		Class:    vygddrasil.ClassWarrior,
		Level:    1,
		BaseStats: vygddrasil.Stats{
			Str: 12, Agi: 8, Int: 4, HP: 120, MP: 20, Luck: 5,
		},
	}
}

// CreateTestMagician creates a test character whose class attacks magically
func CreateTestMagician(playerID string) *vygddrasil.Character {
	return &vygddrasil.Character{
		ID:       "char-test-002",
		PlayerID: playerID,
		Name:     "Eluned",
		Class:    vygddrasil.ClassMagician,
		Level:    1,
		BaseStats: vygddrasil.Stats{
			Str: 4, Agi: 7, Int: 14, HP: 90, MP: 100, Luck: 6,
		},
	}
}

// CreateTestEnemy creates a small physical enemy for battle tests
func CreateTestEnemy() *vygddrasil.Enemy {
	return &vygddrasil.Enemy{
		ID:    "enemy-test-001",
		Name:  "Bog Rat",
		Level: 1,
		Stats: vygddrasil.Stats{
			Str: 6, Agi: 5, Int: 1, HP: 40, MP: 0, Luck: 2,
		},
		AttackType: vygddrasil.AttackTypePhysical,
	}
}

// CreateTestRewardConfig creates a reward config granting exp, gold, and a
// fixed strength bonus
func CreateTestRewardConfig() *vygddrasil.RewardConfig {
	return &vygddrasil.RewardConfig{
		ExpReward:      50,
		GoldReward:     25,
		StatBonusType:  string(vygddrasil.StatStr),
		StatBonusValue: 1,
	}
}
