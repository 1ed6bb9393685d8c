package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
)

// Env carries everything a transition needs besides the state itself: the
// randomness source, the clock for log timestamps, and the player snapshot
// fixed at session creation.
type Env struct {
	Roller           dice.Roller
	Clock            clock.Clock
	PlayerName       string
	PlayerStats      vygddrasil.Stats
	PlayerAttackType vygddrasil.AttackType
}

// Start returns the state of a freshly started battle against the enemy:
// full HP and MP on both sides, player turn, turn count 1, and a single
// log entry announcing the enemy.
func Start(env *Env, enemy *vygddrasil.Enemy) State {
	st := State{
		IsActive:    true,
		Turn:        vygddrasil.ActorPlayer,
		TurnCount:   1,
		PlayerHP:    env.PlayerStats.HP,
		PlayerMaxHP: env.PlayerStats.HP,
		PlayerMP:    env.PlayerStats.MP,
		PlayerMaxMP: env.PlayerStats.MP,
		EnemyHP:     enemy.Stats.HP,
		EnemyMaxHP:  enemy.Stats.HP,
		Enemy:       enemy,
		Result:      vygddrasil.BattleOngoing,
	}
	st.Log = append(st.Log, vygddrasil.BattleLogEntry{
		Turn:      0,
		Actor:     vygddrasil.ActorEnemy,
		Action:    fmt.Sprintf("%s appears!", enemy.Name),
		Timestamp: env.Clock.Now(),
	})
	return st
}

// ApplyPlayerAction runs one player action. Out-of-order calls, terminal
// states, and missing enemies are guarded no-ops returning the state
// unchanged. Errors only surface from the dice roller.
func ApplyPlayerAction(env *Env, st State, action Action) (State, error) {
	if !st.acceptsPlayerAction() {
		return st, nil
	}

	next := st.clone()
	// A stale stance from an unresolved enemy turn does not survive into
	// a new player action.
	next.PlayerDefending = false

	switch a := action.(type) {
	case Attack:
		if err := playerStrike(env, &next, 1.0); err != nil {
			return st, err
		}
	case Defend:
		next.PlayerDefending = true
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:   next.TurnCount,
			Actor:  vygddrasil.ActorPlayer,
			Action: fmt.Sprintf("%s braces for the next attack", env.PlayerName),
		})
	case UseSkill:
		skill := a.Skill
		if skill == nil {
			skill = &defaultSkill
		}
		if next.PlayerMP < skill.MPCost {
			next.appendLog(env, vygddrasil.BattleLogEntry{
				Turn:   next.TurnCount,
				Actor:  vygddrasil.ActorPlayer,
				Action: fmt.Sprintf("%s tries %s, but does not have enough MP", env.PlayerName, skill.Name),
			})
			// Action aborted: no HP change, no turn handoff
			return next, nil
		}
		next.PlayerMP -= skill.MPCost
		if skill.Effect == vygddrasil.SkillEffectHeal {
			heal := int32(skill.Multiplier * float64(env.PlayerStats.Int))
			if next.PlayerHP+heal > next.PlayerMaxHP {
				heal = next.PlayerMaxHP - next.PlayerHP
			}
			next.PlayerHP += heal
			next.appendLog(env, vygddrasil.BattleLogEntry{
				Turn:   next.TurnCount,
				Actor:  vygddrasil.ActorPlayer,
				Action: fmt.Sprintf("%s casts %s", env.PlayerName, skill.Name),
				Heal:   &heal,
			})
		} else {
			if err := playerStrike(env, &next, skill.Multiplier); err != nil {
				return st, err
			}
		}
	case Flee:
		fled, err := combat.CheckFlee(env.Roller, env.PlayerStats, next.Enemy.Stats)
		if err != nil {
			return st, err
		}
		if fled {
			next.Result = vygddrasil.BattleFled
			next.appendLog(env, vygddrasil.BattleLogEntry{
				Turn:   next.TurnCount,
				Actor:  vygddrasil.ActorPlayer,
				Action: fmt.Sprintf("%s flees from %s", env.PlayerName, next.Enemy.Name),
			})
			return next, nil
		}
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:   next.TurnCount,
			Actor:  vygddrasil.ActorPlayer,
			Action: fmt.Sprintf("%s tries to flee, but cannot escape", env.PlayerName),
		})
	}

	// Victory check runs before turn handoff, regardless of action type
	if next.EnemyHP <= 0 {
		next.EnemyHP = 0
		next.Result = vygddrasil.BattleVictory
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:   next.TurnCount,
			Actor:  vygddrasil.ActorPlayer,
			Action: fmt.Sprintf("%s is defeated!", next.Enemy.Name),
		})
		return next, nil
	}

	next.Turn = vygddrasil.ActorEnemy
	return next, nil
}

// ApplyEnemyAction runs the enemy's answer: one dodge-gated attack against
// the player, honoring the defending stance. Resolving the enemy turn
// clears the stance, hands the turn back, and increments the turn count.
func ApplyEnemyAction(env *Env, st State) (State, error) {
	if !st.acceptsEnemyAction() {
		return st, nil
	}

	next := st.clone()

	dodged, err := combat.CheckDodge(env.Roller, env.PlayerStats, next.Enemy.Stats)
	if err != nil {
		return st, err
	}
	if dodged {
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:     next.TurnCount,
			Actor:    vygddrasil.ActorEnemy,
			Action:   fmt.Sprintf("%s attacks, but %s dodges", next.Enemy.Name, env.PlayerName),
			IsDodged: true,
		})
	} else {
		hit, err := combat.CalculateDamage(env.Roller, &combat.AttackInput{
			Attacker:          next.Enemy.Stats,
			Defender:          env.PlayerStats,
			AttackType:        next.Enemy.AttackType,
			DefenderDefending: next.PlayerDefending,
		})
		if err != nil {
			return st, err
		}
		next.PlayerHP -= hit.Damage
		if next.PlayerHP < 0 {
			next.PlayerHP = 0
		}
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:       next.TurnCount,
			Actor:      vygddrasil.ActorEnemy,
			Action:     fmt.Sprintf("%s attacks %s", next.Enemy.Name, env.PlayerName),
			Damage:     &hit.Damage,
			IsCritical: hit.IsCritical,
		})
	}

	if next.PlayerHP <= 0 {
		next.Result = vygddrasil.BattleDefeat
		next.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:   next.TurnCount,
			Actor:  vygddrasil.ActorEnemy,
			Action: fmt.Sprintf("%s has fallen...", env.PlayerName),
		})
		return next, nil
	}

	next.PlayerDefending = false
	next.Turn = vygddrasil.ActorPlayer
	next.TurnCount++
	return next, nil
}

// playerStrike runs a dodge-gated player attack with the given multiplier
// and applies the damage to the enemy
func playerStrike(env *Env, st *State, multiplier float64) error {
	dodged, err := combat.CheckDodge(env.Roller, st.Enemy.Stats, env.PlayerStats)
	if err != nil {
		return err
	}
	if dodged {
		st.appendLog(env, vygddrasil.BattleLogEntry{
			Turn:     st.TurnCount,
			Actor:    vygddrasil.ActorPlayer,
			Action:   fmt.Sprintf("%s attacks, but %s dodges", env.PlayerName, st.Enemy.Name),
			IsDodged: true,
		})
		return nil
	}

	hit, err := combat.CalculateDamage(env.Roller, &combat.AttackInput{
		Attacker:        env.PlayerStats,
		Defender:        st.Enemy.Stats,
		AttackType:      env.PlayerAttackType,
		SkillMultiplier: multiplier,
	})
	if err != nil {
		return err
	}
	st.EnemyHP -= hit.Damage
	if st.EnemyHP < 0 {
		st.EnemyHP = 0
	}
	st.appendLog(env, vygddrasil.BattleLogEntry{
		Turn:       st.TurnCount,
		Actor:      vygddrasil.ActorPlayer,
		Action:     fmt.Sprintf("%s attacks %s", env.PlayerName, st.Enemy.Name),
		Damage:     &hit.Damage,
		IsCritical: hit.IsCritical,
	})
	return nil
}

// appendLog stamps and appends one log entry
func (st *State) appendLog(env *Env, entry vygddrasil.BattleLogEntry) {
	entry.Timestamp = env.Clock.Now()
	st.Log = append(st.Log, entry)
}
