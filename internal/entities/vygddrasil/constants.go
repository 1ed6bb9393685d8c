package vygddrasil

// Class identifies a playable character class
type Class string

// Class constants
const (
	ClassWarrior  Class = "warrior"
	ClassAssassin Class = "assassin"
	ClassArcher   Class = "archer"
	ClassBard     Class = "bard"
	ClassMagician Class = "magician"
)

// AttackType classifies which stat pair drives offense and defense math
type AttackType string

// Attack type constants
const (
	AttackTypePhysical AttackType = "physical"
	AttackTypeMagical  AttackType = "magical"
	AttackTypeMixed    AttackType = "mixed"
)

// StatKey names one of the six character stats
type StatKey string

// Stat keys
const (
	StatStr  StatKey = "str"
	StatAgi  StatKey = "agi"
	StatInt  StatKey = "int"
	StatHP   StatKey = "hp"
	StatMP   StatKey = "mp"
	StatLuck StatKey = "luck"
)

// StatKeys lists the six stat keys in canonical order
var StatKeys = []StatKey{StatStr, StatAgi, StatInt, StatHP, StatMP, StatLuck}

// StatBonusRandom marks a reward config whose stat bonus is resolved to a
// random stat key at reward-computation time
const StatBonusRandom = "random"

// ChoiceOutcome is the declared outcome of a narrative battle choice
type ChoiceOutcome string

// Choice outcome constants
const (
	OutcomeVictory        ChoiceOutcome = "victory"
	OutcomeDefeat         ChoiceOutcome = "defeat"
	OutcomePartialVictory ChoiceOutcome = "partial_victory"
	OutcomeEscape         ChoiceOutcome = "escape"
)

// SkillEffect classifies what a skill does when it lands
type SkillEffect string

// Skill effect constants
const (
	SkillEffectDamage SkillEffect = "damage"
	SkillEffectHeal   SkillEffect = "heal"
)
