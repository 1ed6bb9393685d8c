package combat

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
)

const (
	// percentDie is the d100 used for every percentage gate
	percentDie = 100

	// varianceDie maps to the ±10% damage variance in 0.1% steps:
	// a roll of 1 is -10%, 101 is +0%, 201 is +10%
	varianceDie = 201

	critDamageMultiplier = 1.5
	maxCritChance        = 50.0
	maxDodgeChance       = 60.0

	fleeBaseChance = 30.0
	fleeMinChance  = 10.0
	fleeMaxChance  = 90.0
)

// AttackInput describes one damage exchange between two stat blocks
type AttackInput struct {
	Attacker          vygddrasil.Stats
	Defender          vygddrasil.Stats
	AttackType        vygddrasil.AttackType
	SkillMultiplier   float64 // 1.0 for a plain attack
	DefenderDefending bool    // doubles defense before use
}

// AttackResult is the outcome of one damage calculation
type AttackResult struct {
	Damage     int32
	IsCritical bool
}

// rollPercent draws a single d100 and reports whether it landed at or
// under the given chance (in percent)
func rollPercent(roller dice.Roller, chance float64) (bool, error) {
	roll, err := roller.Roll(percentDie)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll percent die")
	}
	return float64(roll) <= chance, nil
}

// rollVariance draws the damage variance factor in [0.9, 1.1]
func rollVariance(roller dice.Roller) (float64, error) {
	roll, err := roller.Roll(varianceDie)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll variance die")
	}
	return 0.9 + float64(roll-1)*0.001, nil
}

// CritChance returns the attacker's critical chance in percent, capped at 50
func CritChance(attacker vygddrasil.Stats) float64 {
	chance := float64(attacker.Luck) * 2
	if chance > maxCritChance {
		chance = maxCritChance
	}
	return chance
}

// attackBase returns the offensive base and the defensive reduction for
// the given attack type
func attackBase(in *AttackInput) (base, defense float64) {
	atkStr := float64(in.Attacker.Str)
	atkInt := float64(in.Attacker.Int)
	defStr := float64(in.Defender.Str)
	defAgi := float64(in.Defender.Agi)
	defInt := float64(in.Defender.Int)
	defMP := float64(in.Defender.MP)

	switch in.AttackType {
	case vygddrasil.AttackTypeMagical:
		base = atkInt * 2
		defense = defInt*0.5 + defMP*0.01
	case vygddrasil.AttackTypeMixed:
		base = math.Max(atkStr*2, atkInt*2)
		defense = (defStr*0.5 + defInt*0.5) / 2
	default: // physical
		base = atkStr * 2
		defense = defStr*0.5 + defAgi*0.3
	}

	if in.DefenderDefending {
		defense *= 2
	}
	return base, defense
}

// CalculateDamage resolves one hit. It draws the critical gate first and
// the variance die second, so a scripted roller can pin both. Damage never
// drops below 1.
func CalculateDamage(roller dice.Roller, in *AttackInput) (*AttackResult, error) {
	multiplier := in.SkillMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}

	base, defense := attackBase(in)

	isCritical, err := rollPercent(roller, CritChance(in.Attacker))
	if err != nil {
		return nil, err
	}

	raw := (base - defense*0.3) * multiplier
	if isCritical {
		raw *= critDamageMultiplier
	}

	variance, err := rollVariance(roller)
	if err != nil {
		return nil, err
	}

	damage := int32(math.Floor(raw * variance))
	if damage < 1 {
		damage = 1
	}

	return &AttackResult{Damage: damage, IsCritical: isCritical}, nil
}

// DodgeChance returns the defender's chance to dodge in percent. The base
// chance is capped at 60 before the attacker's agility is subtracted, and
// the final chance never goes below 0.
func DodgeChance(defender, attacker vygddrasil.Stats) float64 {
	chance := float64(defender.Agi)*1.5 + float64(defender.Luck)*0.5
	if chance > maxDodgeChance {
		chance = maxDodgeChance
	}
	chance -= float64(attacker.Agi) * 0.5
	if chance < 0 {
		chance = 0
	}
	return chance
}

// CheckDodge draws the single dodge gate. Callers must skip the damage
// exchange entirely when this reports true.
func CheckDodge(roller dice.Roller, defender, attacker vygddrasil.Stats) (bool, error) {
	return rollPercent(roller, DodgeChance(defender, attacker))
}

// FleeChance returns the player's chance to flee in percent, clamped to
// the 10..90 band
func FleeChance(player, enemy vygddrasil.Stats) float64 {
	chance := fleeBaseChance + float64(player.Agi-enemy.Agi)*2 + float64(player.Luck)
	if chance < fleeMinChance {
		chance = fleeMinChance
	}
	if chance > fleeMaxChance {
		chance = fleeMaxChance
	}
	return chance
}

// CheckFlee draws the single flee gate
func CheckFlee(roller dice.Roller, player, enemy vygddrasil.Stats) (bool, error) {
	return rollPercent(roller, FleeChance(player, enemy))
}
