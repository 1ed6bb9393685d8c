package battle

import (
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// Action is the closed set of things a player can do on their turn. Each
// variant carries exactly the data it needs.
type Action interface {
	isAction()
}

// Attack is a plain weapon attack with no multiplier
type Attack struct{}

func (Attack) isAction() {}

// Defend raises a defensive stance against the next enemy attack
type Defend struct{}

func (Defend) isAction() {}

// UseSkill spends MP on a skill. A nil Skill uses the built-in default.
type UseSkill struct {
	Skill *vygddrasil.Skill
}

func (UseSkill) isAction() {}

// Flee attempts to escape the battle
type Flee struct{}

func (Flee) isAction() {}

// defaultSkill is applied when UseSkill carries no skill descriptor
var defaultSkill = vygddrasil.Skill{
	ID:         "skill_focus_strike",
	Name:       "Focus Strike",
	MPCost:     10,
	Multiplier: 1.5,
	Effect:     vygddrasil.SkillEffectDamage,
}
