package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

func TestChoiceSuccessChance(t *testing.T) {
	t.Run("base chance plus luck without a stat check", func(t *testing.T) {
		chance := ChoiceSuccessChance(vygddrasil.Stats{Luck: 5}, &vygddrasil.BattleChoice{})
		assert.Equal(t, 55.0, chance)
	})

	t.Run("stat check shifts by 5 per point", func(t *testing.T) {
		choice := &vygddrasil.BattleChoice{
			StatCheck: &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 8},
		}
		chance := ChoiceSuccessChance(vygddrasil.Stats{Str: 10, Luck: 3}, choice)
		assert.Equal(t, 63.0, chance) // 50 + 2x5 + 3
	})

	t.Run("clamped to the 10..90 band", func(t *testing.T) {
		strong := &vygddrasil.BattleChoice{
			StatCheck: &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 0},
		}
		assert.Equal(t, 90.0, ChoiceSuccessChance(vygddrasil.Stats{Str: 100}, strong))

		hopeless := &vygddrasil.BattleChoice{
			StatCheck: &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 100},
		}
		assert.Equal(t, 10.0, ChoiceSuccessChance(vygddrasil.Stats{Str: 0}, hopeless))
	})
}

func TestResolveChoiceOneShot(t *testing.T) {
	t.Run("no stat check returns the declared outcome without a draw", func(t *testing.T) {
		choice := &vygddrasil.BattleChoice{Outcome: vygddrasil.OutcomeEscape}
		// The empty scripted roller errors on any draw, so success here
		// proves no randomness was consumed.
		outcome, err := ResolveChoiceOneShot(&scriptedRoller{}, basicAttacker, choice)
		require.NoError(t, err)
		assert.Equal(t, vygddrasil.OutcomeEscape, outcome)
	})

	t.Run("stat check success yields the declared outcome", func(t *testing.T) {
		choice := &vygddrasil.BattleChoice{
			Outcome:   vygddrasil.OutcomePartialVictory,
			StatCheck: &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 10},
		}
		// chance = 50 + 0 + 0 = 50
		outcome, err := ResolveChoiceOneShot(&scriptedRoller{rolls: []int{50}}, basicAttacker, choice)
		require.NoError(t, err)
		assert.Equal(t, vygddrasil.OutcomePartialVictory, outcome)
	})

	t.Run("stat check failure yields defeat", func(t *testing.T) {
		choice := &vygddrasil.BattleChoice{
			Outcome:   vygddrasil.OutcomeVictory,
			StatCheck: &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 10},
		}
		outcome, err := ResolveChoiceOneShot(&scriptedRoller{rolls: []int{51}}, basicAttacker, choice)
		require.NoError(t, err)
		assert.Equal(t, vygddrasil.OutcomeDefeat, outcome)
	})

	t.Run("nil choice rejected", func(t *testing.T) {
		_, err := ResolveChoiceOneShot(&scriptedRoller{}, basicAttacker, nil)
		assert.Error(t, err)
	})
}

func TestResolveChoiceRound(t *testing.T) {
	enemy := &vygddrasil.Enemy{
		Name:       "Bog Rat",
		Stats:      vygddrasil.Stats{Str: 4, Agi: 2, HP: 50},
		AttackType: vygddrasil.AttackTypePhysical,
	}
	choice := &vygddrasil.BattleChoice{
		Text:        "Lunge for the throat",
		SuccessText: "The lunge lands true",
		FailureText: "The rat slips aside",
		StatCheck:   &vygddrasil.StatCheck{Stat: vygddrasil.StatStr, Threshold: 10},
	}

	t.Run("success hits at 1.5x with a 0.5x counter", func(t *testing.T) {
		// draw 50 succeeds; player hit floor(19.22x1.5)=28; counter
		// floor((8-1.95)x0.5)=3
		roller := &scriptedRoller{rolls: []int{50, 100, 101, 100, 101}}
		out, err := ResolveChoiceRound(roller, &ChoiceRoundInput{
			Player:           basicAttacker,
			PlayerAttackType: vygddrasil.AttackTypePhysical,
			Enemy:            enemy,
			PlayerHP:         100,
			EnemyHP:          50,
			Choice:           choice,
		})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, int32(28), out.DamageToEnemy)
		assert.Equal(t, int32(3), out.DamageToPlayer)
		assert.Equal(t, int32(22), out.EnemyHP)
		assert.Equal(t, int32(97), out.PlayerHP)
		assert.Equal(t, choice.SuccessText, out.Description)
	})

	t.Run("failure hits at 1.2x with a 0.3x counter", func(t *testing.T) {
		// draw 51 fails; enemy hit floor((8-1.95)x1.2)=7; counter
		// floor(19.22x0.3)=5
		roller := &scriptedRoller{rolls: []int{51, 100, 101, 100, 101}}
		out, err := ResolveChoiceRound(roller, &ChoiceRoundInput{
			Player:           basicAttacker,
			PlayerAttackType: vygddrasil.AttackTypePhysical,
			Enemy:            enemy,
			PlayerHP:         100,
			EnemyHP:          50,
			Choice:           choice,
		})
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, int32(7), out.DamageToPlayer)
		assert.Equal(t, int32(5), out.DamageToEnemy)
		assert.Equal(t, int32(93), out.PlayerHP)
		assert.Equal(t, int32(45), out.EnemyHP)
		assert.Equal(t, choice.FailureText, out.Description)
	})

	t.Run("no counter once the main blow kills", func(t *testing.T) {
		// Enemy starts at 20 HP; the 28-damage hit drops it to 0. The
		// roller script ends there, proving no counter is drawn.
		roller := &scriptedRoller{rolls: []int{50, 100, 101}}
		out, err := ResolveChoiceRound(roller, &ChoiceRoundInput{
			Player:           basicAttacker,
			PlayerAttackType: vygddrasil.AttackTypePhysical,
			Enemy:            enemy,
			PlayerHP:         100,
			EnemyHP:          20,
			Choice:           choice,
		})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, int32(0), out.EnemyHP)
		assert.Equal(t, int32(0), out.DamageToPlayer)
		assert.Equal(t, int32(100), out.PlayerHP)
	})

	t.Run("missing enemy rejected", func(t *testing.T) {
		_, err := ResolveChoiceRound(&scriptedRoller{}, &ChoiceRoundInput{Choice: choice})
		assert.Error(t, err)
	})
}
