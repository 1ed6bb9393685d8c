package combat

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
)

// maxAutoBattleTurns caps a simulated battle. A battle that exhausts the
// cap with both sides alive counts as a victory, since the result is read
// from the player's HP at loop exit.
const maxAutoBattleTurns = 50

// AutoBattleInput describes one fully simulated battle
type AutoBattleInput struct {
	PlayerName       string
	Player           vygddrasil.Stats
	PlayerAttackType vygddrasil.AttackType
	Enemy            *vygddrasil.Enemy
}

// AutoBattleOutput carries the complete ordered log and the terminal result
type AutoBattleOutput struct {
	Result   vygddrasil.BattleResult
	Log      []vygddrasil.BattleLogEntry
	PlayerHP int32
	EnemyHP  int32
	Turns    int32
}

// Validate ensures the simulation has both sides
func (in *AutoBattleInput) Validate() error {
	if in == nil {
		return errors.InvalidArgument("input is required")
	}
	if in.Enemy == nil {
		return errors.InvalidArgument("enemy is required")
	}
	return nil
}

// SimulateAutoBattle runs a full alternating exchange starting from full HP
// on both sides. Each turn the player acts first; the enemy only answers if
// it survived. The loop ends when either side reaches 0 HP or the turn cap
// is hit.
func SimulateAutoBattle(roller dice.Roller, clk clock.Clock, in *AutoBattleInput) (*AutoBattleOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	playerHP := in.Player.HP
	enemyHP := in.Enemy.Stats.HP
	log := make([]vygddrasil.BattleLogEntry, 0, maxAutoBattleTurns*2)

	var turn int32
	for turn = 1; turn <= maxAutoBattleTurns; turn++ {
		// Player strike
		entry, damage, err := resolveStrike(roller, clk, turn, vygddrasil.ActorPlayer, &AttackInput{
			Attacker:   in.Player,
			Defender:   in.Enemy.Stats,
			AttackType: in.PlayerAttackType,
		}, in.PlayerName, in.Enemy.Name)
		if err != nil {
			return nil, err
		}
		log = append(log, entry)
		enemyHP -= damage
		if enemyHP <= 0 {
			enemyHP = 0
			break
		}

		// Enemy answers only while alive
		entry, damage, err = resolveStrike(roller, clk, turn, vygddrasil.ActorEnemy, &AttackInput{
			Attacker:   in.Enemy.Stats,
			Defender:   in.Player,
			AttackType: in.Enemy.AttackType,
		}, in.Enemy.Name, in.PlayerName)
		if err != nil {
			return nil, err
		}
		log = append(log, entry)
		playerHP -= damage
		if playerHP <= 0 {
			playerHP = 0
			break
		}
	}
	if turn > maxAutoBattleTurns {
		turn = maxAutoBattleTurns
	}

	result := vygddrasil.BattleDefeat
	if playerHP > 0 {
		result = vygddrasil.BattleVictory
	}

	return &AutoBattleOutput{
		Result:   result,
		Log:      log,
		PlayerHP: playerHP,
		EnemyHP:  enemyHP,
		Turns:    turn,
	}, nil
}

// resolveStrike runs one dodge-gated damage exchange and renders the log
// entry. Damage is zero when the defender dodged.
func resolveStrike(
	roller dice.Roller,
	clk clock.Clock,
	turn int32,
	actor vygddrasil.Actor,
	in *AttackInput,
	attackerName, defenderName string,
) (vygddrasil.BattleLogEntry, int32, error) {
	dodged, err := CheckDodge(roller, in.Defender, in.Attacker)
	if err != nil {
		return vygddrasil.BattleLogEntry{}, 0, err
	}

	entry := vygddrasil.BattleLogEntry{
		Turn:      turn,
		Actor:     actor,
		Timestamp: clk.Now(),
	}

	if dodged {
		entry.Action = fmt.Sprintf("%s attacks, but %s dodges", attackerName, defenderName)
		entry.IsDodged = true
		return entry, 0, nil
	}

	result, err := CalculateDamage(roller, in)
	if err != nil {
		return vygddrasil.BattleLogEntry{}, 0, err
	}

	entry.Action = fmt.Sprintf("%s attacks %s", attackerName, defenderName)
	entry.Damage = &result.Damage
	entry.IsCritical = result.IsCritical
	return entry, result.Damage, nil
}
