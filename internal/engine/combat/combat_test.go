package combat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// scriptedRoller returns queued rolls in order and errors once exhausted,
// so a test also proves how many draws an operation makes
type scriptedRoller struct {
	rolls []int
	idx   int
}

func (s *scriptedRoller) Roll(_ int) (int, error) {
	if s.idx >= len(s.rolls) {
		return 0, fmt.Errorf("scripted roller exhausted after %d rolls", len(s.rolls))
	}
	roll := s.rolls[s.idx]
	s.idx++
	return roll, nil
}

func (s *scriptedRoller) RollN(times, size int) ([]int, error) {
	out := make([]int, 0, times)
	for i := 0; i < times; i++ {
		roll, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}

// loopRoller repeats a fixed roll pattern forever
type loopRoller struct {
	rolls []int
	idx   int
}

func (l *loopRoller) Roll(_ int) (int, error) {
	roll := l.rolls[l.idx%len(l.rolls)]
	l.idx++
	return roll, nil
}

func (l *loopRoller) RollN(times, size int) ([]int, error) {
	out := make([]int, 0, times)
	for i := 0; i < times; i++ {
		roll, _ := l.Roll(size)
		out = append(out, roll)
	}
	return out, nil
}

// Shared stat blocks matching the documented damage walkthrough
var (
	basicAttacker = vygddrasil.Stats{Str: 10, Agi: 5, Int: 0, HP: 100, MP: 0, Luck: 0}
	basicDefender = vygddrasil.Stats{Str: 4, Agi: 2, Int: 0, HP: 50, MP: 0, Luck: 0}
)

func TestCalculateDamage(t *testing.T) {
	t.Run("basic physical hit", func(t *testing.T) {
		// base=20, defense=4x0.5+2x0.3=2.6, raw=20-0.78=19.22
		roller := &scriptedRoller{rolls: []int{100, 101}} // no crit, variance 1.0
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:   basicAttacker,
			Defender:   basicDefender,
			AttackType: vygddrasil.AttackTypePhysical,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(19), result.Damage)
		assert.False(t, result.IsCritical)
	})

	t.Run("critical multiplies the baseline by 1.5", func(t *testing.T) {
		attacker := basicAttacker
		attacker.Luck = 25 // 50% crit chance
		roller := &scriptedRoller{rolls: []int{1, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:   attacker,
			Defender:   basicDefender,
			AttackType: vygddrasil.AttackTypePhysical,
		})
		require.NoError(t, err)
		assert.True(t, result.IsCritical)
		// floor(19.22 x 1.5) = 28, against the non-critical 19
		assert.Equal(t, int32(28), result.Damage)
	})

	t.Run("damage never drops below 1", func(t *testing.T) {
		roller := &scriptedRoller{rolls: []int{100, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:   vygddrasil.Stats{Str: 1},
			Defender:   vygddrasil.Stats{Str: 100, Agi: 100},
			AttackType: vygddrasil.AttackTypePhysical,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), result.Damage)
	})

	t.Run("variance bounds", func(t *testing.T) {
		low := &scriptedRoller{rolls: []int{100, 1}} // -10%
		result, err := CalculateDamage(low, &AttackInput{
			Attacker:   basicAttacker,
			Defender:   basicDefender,
			AttackType: vygddrasil.AttackTypePhysical,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(17), result.Damage) // floor(19.22 x 0.9)

		high := &scriptedRoller{rolls: []int{100, 201}} // +10%
		result, err = CalculateDamage(high, &AttackInput{
			Attacker:   basicAttacker,
			Defender:   basicDefender,
			AttackType: vygddrasil.AttackTypePhysical,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(21), result.Damage) // floor(19.22 x 1.1)
	})

	t.Run("zero multiplier falls back to 1.0", func(t *testing.T) {
		roller := &scriptedRoller{rolls: []int{100, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:        basicAttacker,
			Defender:        basicDefender,
			AttackType:      vygddrasil.AttackTypePhysical,
			SkillMultiplier: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(19), result.Damage)
	})

	t.Run("defending doubles defense", func(t *testing.T) {
		roller := &scriptedRoller{rolls: []int{100, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:          basicAttacker,
			Defender:          basicDefender,
			AttackType:        vygddrasil.AttackTypePhysical,
			DefenderDefending: true,
		})
		require.NoError(t, err)
		// defense 2.6 -> 5.2, raw = 20 - 1.56 = 18.44
		assert.Equal(t, int32(18), result.Damage)
	})

	t.Run("magical uses int and mp", func(t *testing.T) {
		roller := &scriptedRoller{rolls: []int{100, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:   vygddrasil.Stats{Int: 10},
			Defender:   vygddrasil.Stats{Int: 4, MP: 100},
			AttackType: vygddrasil.AttackTypeMagical,
		})
		require.NoError(t, err)
		// base=20, defense=4x0.5+100x0.01=3, raw=20-0.9=19.1
		assert.Equal(t, int32(19), result.Damage)
	})

	t.Run("mixed takes the better offensive stat", func(t *testing.T) {
		roller := &scriptedRoller{rolls: []int{100, 101}}
		result, err := CalculateDamage(roller, &AttackInput{
			Attacker:   vygddrasil.Stats{Str: 6, Int: 10},
			Defender:   vygddrasil.Stats{Str: 4, Int: 4},
			AttackType: vygddrasil.AttackTypeMixed,
		})
		require.NoError(t, err)
		// base=max(12,20)=20, defense=(2+2)/2=2, raw=20-0.6=19.4
		assert.Equal(t, int32(19), result.Damage)
	})
}

func TestCritChance(t *testing.T) {
	assert.Equal(t, 20.0, CritChance(vygddrasil.Stats{Luck: 10}))
	assert.Equal(t, 50.0, CritChance(vygddrasil.Stats{Luck: 30}), "capped at 50")
	assert.Equal(t, 0.0, CritChance(vygddrasil.Stats{}))
}

func TestDodgeChance(t *testing.T) {
	t.Run("capped at 60 before attacker agility", func(t *testing.T) {
		chance := DodgeChance(vygddrasil.Stats{Agi: 100, Luck: 100}, vygddrasil.Stats{Agi: 0})
		assert.Equal(t, 60.0, chance)
	})

	t.Run("attacker agility reduces the chance", func(t *testing.T) {
		chance := DodgeChance(vygddrasil.Stats{Agi: 20, Luck: 10}, vygddrasil.Stats{Agi: 30})
		assert.Equal(t, 20.0, chance) // 30+5 = 35, minus 15
	})

	t.Run("never negative", func(t *testing.T) {
		chance := DodgeChance(vygddrasil.Stats{}, vygddrasil.Stats{Agi: 100})
		assert.Equal(t, 0.0, chance)
	})
}

func TestCheckDodge(t *testing.T) {
	defender := vygddrasil.Stats{Agi: 100, Luck: 100}
	attacker := vygddrasil.Stats{Agi: 0}

	dodged, err := CheckDodge(&scriptedRoller{rolls: []int{60}}, defender, attacker)
	require.NoError(t, err)
	assert.True(t, dodged)

	dodged, err = CheckDodge(&scriptedRoller{rolls: []int{61}}, defender, attacker)
	require.NoError(t, err)
	assert.False(t, dodged)
}

func TestFleeChance(t *testing.T) {
	t.Run("clamped to the 10 floor", func(t *testing.T) {
		chance := FleeChance(vygddrasil.Stats{Agi: 0, Luck: 0}, vygddrasil.Stats{Agi: 100})
		assert.Equal(t, 10.0, chance)
	})

	t.Run("clamped to the 90 ceiling", func(t *testing.T) {
		chance := FleeChance(vygddrasil.Stats{Agi: 100, Luck: 100}, vygddrasil.Stats{Agi: 0})
		assert.Equal(t, 90.0, chance)
	})

	t.Run("mid-band value", func(t *testing.T) {
		chance := FleeChance(vygddrasil.Stats{Agi: 10, Luck: 5}, vygddrasil.Stats{Agi: 8})
		assert.Equal(t, 39.0, chance) // 30 + 2x2 + 5
	})
}

func TestAttackTypeForClass(t *testing.T) {
	assert.Equal(t, vygddrasil.AttackTypePhysical, AttackTypeForClass(vygddrasil.ClassWarrior))
	assert.Equal(t, vygddrasil.AttackTypePhysical, AttackTypeForClass(vygddrasil.ClassAssassin))
	assert.Equal(t, vygddrasil.AttackTypePhysical, AttackTypeForClass(vygddrasil.ClassArcher))
	assert.Equal(t, vygddrasil.AttackTypeMagical, AttackTypeForClass(vygddrasil.ClassBard))
	assert.Equal(t, vygddrasil.AttackTypeMagical, AttackTypeForClass(vygddrasil.ClassMagician))
	assert.Equal(t, vygddrasil.AttackTypePhysical, AttackTypeForClass(vygddrasil.Class("unknown")))
}

func TestTotalStats(t *testing.T) {
	char := &vygddrasil.Character{
		BaseStats:  vygddrasil.Stats{Str: 10, Agi: 5, Int: 3, HP: 100, MP: 20, Luck: 4},
		BonusStats: vygddrasil.Stats{Str: 2, HP: 15, Luck: 1},
	}

	total := TotalStats(char)
	assert.Equal(t, vygddrasil.Stats{Str: 12, Agi: 5, Int: 3, HP: 115, MP: 20, Luck: 5}, total)
	assert.Equal(t, vygddrasil.Stats{Str: 10, Agi: 5, Int: 3, HP: 100, MP: 20, Luck: 4}, char.BaseStats, "input not mutated")
}
