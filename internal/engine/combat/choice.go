package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
)

const (
	choiceBaseChance = 50.0
	choiceMinChance  = 10.0
	choiceMaxChance  = 90.0

	// Multipliers for the round-based choice exchange
	choiceSuccessHitMultiplier     = 1.5
	choiceSuccessCounterMultiplier = 0.5
	choiceFailureHitMultiplier     = 1.2
	choiceFailureCounterMultiplier = 0.3
)

// ChoiceSuccessChance computes the success probability for a battle choice
// in percent: 50 shifted by (playerStat - threshold) x 5 when a stat check
// is configured, plus luck, clamped to the 10..90 band.
func ChoiceSuccessChance(player vygddrasil.Stats, choice *vygddrasil.BattleChoice) float64 {
	chance := choiceBaseChance
	if choice.StatCheck != nil {
		chance += float64(player.Get(choice.StatCheck.Stat)-choice.StatCheck.Threshold) * 5
	}
	chance += float64(player.Luck)
	if chance < choiceMinChance {
		chance = choiceMinChance
	}
	if chance > choiceMaxChance {
		chance = choiceMaxChance
	}
	return chance
}

// ChoiceRoundInput describes one HP-tracked choice round
type ChoiceRoundInput struct {
	Player           vygddrasil.Stats
	PlayerAttackType vygddrasil.AttackType
	Enemy            *vygddrasil.Enemy
	PlayerHP         int32
	EnemyHP          int32
	Choice           *vygddrasil.BattleChoice
}

// ChoiceRoundOutput carries the resolved round: new HP on both sides, the
// damage dealt each way, which side's narrative to show, and whether the
// round's main blow was critical
type ChoiceRoundOutput struct {
	Success        bool
	PlayerHP       int32
	EnemyHP        int32
	DamageToEnemy  int32
	DamageToPlayer int32
	Description    string
	IsCritical     bool
}

// Validate ensures the round has an enemy and a choice
func (in *ChoiceRoundInput) Validate() error {
	if in == nil {
		return errors.InvalidArgument("input is required")
	}
	if in.Enemy == nil {
		return errors.InvalidArgument("enemy is required")
	}
	if in.Choice == nil {
		return errors.InvalidArgument("choice is required")
	}
	return nil
}

// ResolveChoiceRound resolves one round of a multi-round choice battle. One
// draw decides success. On success the player lands a 1.5x hit and the
// enemy counters at 0.5x; on failure the enemy lands a 1.2x hit and the
// player counters at 0.3x. A side that fell to the main blow does not
// counter.
func ResolveChoiceRound(roller dice.Roller, in *ChoiceRoundInput) (*ChoiceRoundOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	success, err := rollPercent(roller, ChoiceSuccessChance(in.Player, in.Choice))
	if err != nil {
		return nil, err
	}

	out := &ChoiceRoundOutput{
		Success:  success,
		PlayerHP: in.PlayerHP,
		EnemyHP:  in.EnemyHP,
	}

	if success {
		hit, err := CalculateDamage(roller, &AttackInput{
			Attacker:        in.Player,
			Defender:        in.Enemy.Stats,
			AttackType:      in.PlayerAttackType,
			SkillMultiplier: choiceSuccessHitMultiplier,
		})
		if err != nil {
			return nil, err
		}
		out.DamageToEnemy = hit.Damage
		out.IsCritical = hit.IsCritical
		out.EnemyHP = clampHP(in.EnemyHP - hit.Damage)
		out.Description = in.Choice.SuccessText

		if out.EnemyHP > 0 {
			counter, err := CalculateDamage(roller, &AttackInput{
				Attacker:        in.Enemy.Stats,
				Defender:        in.Player,
				AttackType:      in.Enemy.AttackType,
				SkillMultiplier: choiceSuccessCounterMultiplier,
			})
			if err != nil {
				return nil, err
			}
			out.DamageToPlayer = counter.Damage
			out.PlayerHP = clampHP(in.PlayerHP - counter.Damage)
		}
		return out, nil
	}

	hit, err := CalculateDamage(roller, &AttackInput{
		Attacker:        in.Enemy.Stats,
		Defender:        in.Player,
		AttackType:      in.Enemy.AttackType,
		SkillMultiplier: choiceFailureHitMultiplier,
	})
	if err != nil {
		return nil, err
	}
	out.DamageToPlayer = hit.Damage
	out.IsCritical = hit.IsCritical
	out.PlayerHP = clampHP(in.PlayerHP - hit.Damage)
	out.Description = in.Choice.FailureText

	if out.PlayerHP > 0 {
		counter, err := CalculateDamage(roller, &AttackInput{
			Attacker:        in.Player,
			Defender:        in.Enemy.Stats,
			AttackType:      in.PlayerAttackType,
			SkillMultiplier: choiceFailureCounterMultiplier,
		})
		if err != nil {
			return nil, err
		}
		out.DamageToEnemy = counter.Damage
		out.EnemyHP = clampHP(in.EnemyHP - counter.Damage)
	}
	return out, nil
}

// ResolveChoiceOneShot resolves an entire encounter from a single choice.
// Without a stat check the declared outcome is returned as-is, with no
// randomness. With a stat check, one draw decides the encounter: success
// yields the declared outcome, failure yields defeat.
func ResolveChoiceOneShot(
	roller dice.Roller,
	player vygddrasil.Stats,
	choice *vygddrasil.BattleChoice,
) (vygddrasil.ChoiceOutcome, error) {
	if choice == nil {
		return "", errors.InvalidArgument("choice is required")
	}
	if choice.StatCheck == nil {
		return choice.Outcome, nil
	}

	success, err := rollPercent(roller, ChoiceSuccessChance(player, choice))
	if err != nil {
		return "", err
	}
	if success {
		return choice.Outcome, nil
	}
	return vygddrasil.OutcomeDefeat, nil
}

func clampHP(hp int32) int32 {
	if hp < 0 {
		return 0
	}
	return hp
}
