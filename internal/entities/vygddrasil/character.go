// Package vygddrasil implements the Vygddrasil game entities
package vygddrasil

// Stats holds the six combat stats shared by characters and enemies.
// NOTE: This is a data-only struct. All combat math (damage, dodge, flee,
// rewards) is done by the combat engine, not here.
type Stats struct {
	Str  int32 `json:"str"`
	Agi  int32 `json:"agi"`
	Int  int32 `json:"int"`
	HP   int32 `json:"hp"`
	MP   int32 `json:"mp"`
	Luck int32 `json:"luck"`
}

// Add returns the per-field sum of two stat blocks
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Str:  s.Str + other.Str,
		Agi:  s.Agi + other.Agi,
		Int:  s.Int + other.Int,
		HP:   s.HP + other.HP,
		MP:   s.MP + other.MP,
		Luck: s.Luck + other.Luck,
	}
}

// Get returns the value of the named stat, or 0 for an unknown key
func (s Stats) Get(key StatKey) int32 {
	switch key {
	case StatStr:
		return s.Str
	case StatAgi:
		return s.Agi
	case StatInt:
		return s.Int
	case StatHP:
		return s.HP
	case StatMP:
		return s.MP
	case StatLuck:
		return s.Luck
	default:
		return 0
	}
}

// Character represents a Vygddrasil player character as supplied by the
// external persistence layer. The battle core never mutates a Character;
// it reads stats to build a total-stats snapshot for one battle.
type Character struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Class      Class  `json:"class"`
	Level      int32  `json:"level"`
	Experience int32  `json:"experience"`
	BaseStats  Stats  `json:"base_stats"`
	BonusStats Stats  `json:"bonus_stats"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// Skill describes an active skill a character can use in battle
type Skill struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	MPCost     int32       `json:"mp_cost"`
	Multiplier float64     `json:"multiplier"`
	Effect     SkillEffect `json:"effect"`
}
