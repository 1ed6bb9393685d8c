// Package combat implements the Vygddrasil combat math: stat aggregation,
// damage, dodge, flee, auto-battle simulation, choice resolution, rewards
// and level-up arithmetic. Every function takes its randomness from an
// injected dice.Roller and keeps no hidden state.
package combat

import (
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// classAttackTypes is the closed lookup table from class to attack type.
// Classes absent from the table fight physically.
var classAttackTypes = map[vygddrasil.Class]vygddrasil.AttackType{
	vygddrasil.ClassWarrior:  vygddrasil.AttackTypePhysical,
	vygddrasil.ClassAssassin: vygddrasil.AttackTypePhysical,
	vygddrasil.ClassArcher:   vygddrasil.AttackTypePhysical,
	vygddrasil.ClassBard:     vygddrasil.AttackTypeMagical,
	vygddrasil.ClassMagician: vygddrasil.AttackTypeMagical,
}

// AttackTypeForClass returns the attack type a class fights with
func AttackTypeForClass(class vygddrasil.Class) vygddrasil.AttackType {
	if t, ok := classAttackTypes[class]; ok {
		return t
	}
	return vygddrasil.AttackTypePhysical
}

// TotalStats returns the character's base stats plus equipment bonus stats,
// summed per field. The character is not mutated; the returned snapshot is
// only valid for the duration of one calculation.
func TotalStats(c *vygddrasil.Character) vygddrasil.Stats {
	return c.BaseStats.Add(c.BonusStats)
}
