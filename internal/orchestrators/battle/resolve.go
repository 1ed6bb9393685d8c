package battle

import (
	"context"
	"log/slog"

	enginebattle "github.com/vygddrasil/battle-api/internal/engine/battle"
	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
)

// AutoResolve simulates an entire battle in one call and records it under
// a fresh battle ID
func (o *orchestrator) AutoResolve(
	ctx context.Context,
	input *AutoResolveInput,
) (*AutoResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, enemy, err := o.loadParticipants(ctx, input.CharacterID, input.EnemyID)
	if err != nil {
		return nil, err
	}

	stats := combat.TotalStats(char)
	out, err := combat.SimulateAutoBattle(o.diceRoller, o.clock, &combat.AutoBattleInput{
		PlayerName:       char.Name,
		Player:           stats,
		PlayerAttackType: combat.AttackTypeForClass(char.Class),
		Enemy:            enemy,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate battle")
	}

	// The replaced state snaps enemy HP to the outcome, not the simulator's
	// running tally: a slain enemy shows 0, a victorious one shows full
	enemyHP := int32(0)
	if out.Result == vygddrasil.BattleDefeat {
		enemyHP = enemy.Stats.HP
	}

	st := enginebattle.State{
		IsActive:    false,
		Turn:        vygddrasil.ActorPlayer,
		TurnCount:   out.Turns,
		PlayerHP:    out.PlayerHP,
		PlayerMaxHP: stats.HP,
		PlayerMP:    stats.MP,
		PlayerMaxMP: stats.MP,
		EnemyHP:     enemyHP,
		EnemyMaxHP:  enemy.Stats.HP,
		Enemy:       enemy,
		Log:         out.Log,
		Result:      out.Result,
	}

	battleID, entry, err := o.registerResolved(char, enemy, input.RewardConfig, st)
	if err != nil {
		return nil, err
	}
	o.settleIfFinished(ctx, battleID, entry)

	slog.InfoContext(ctx, "battle auto-resolved",
		"battle_id", battleID,
		"result", out.Result,
		"turns", out.Turns)

	return &AutoResolveOutput{
		BattleID: battleID,
		State:    entry.session.State(),
	}, nil
}

// ChoiceResolve settles an entire encounter from a single narrative choice
func (o *orchestrator) ChoiceResolve(
	ctx context.Context,
	input *ChoiceResolveInput,
) (*ChoiceResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Choice == nil {
		return nil, errors.InvalidArgument("choice is required")
	}

	char, enemy, err := o.loadParticipants(ctx, input.CharacterID, input.EnemyID)
	if err != nil {
		return nil, err
	}

	stats := combat.TotalStats(char)
	outcome, err := combat.ResolveChoiceOneShot(o.diceRoller, stats, input.Choice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve choice")
	}

	result := resultForOutcome(outcome)
	narrative := input.Choice.SuccessText
	if outcome == vygddrasil.OutcomeDefeat {
		narrative = input.Choice.FailureText
	}

	playerHP := stats.HP
	enemyHP := enemy.Stats.HP
	switch result {
	case vygddrasil.BattleVictory:
		enemyHP = 0
	case vygddrasil.BattleDefeat:
		playerHP = 0
	}

	now := o.clock.Now()
	st := enginebattle.State{
		IsActive:    false,
		Turn:        vygddrasil.ActorPlayer,
		TurnCount:   1,
		PlayerHP:    playerHP,
		PlayerMaxHP: stats.HP,
		PlayerMP:    stats.MP,
		PlayerMaxMP: stats.MP,
		EnemyHP:     enemyHP,
		EnemyMaxHP:  enemy.Stats.HP,
		Enemy:       enemy,
		Log: []vygddrasil.BattleLogEntry{
			{Turn: 1, Actor: vygddrasil.ActorPlayer, Action: input.Choice.Text, Timestamp: now},
			{Turn: 1, Actor: vygddrasil.ActorPlayer, Action: narrative, Timestamp: now},
		},
		Result: result,
	}

	battleID, entry, err := o.registerResolved(char, enemy, input.RewardConfig, st)
	if err != nil {
		return nil, err
	}
	o.settleIfFinished(ctx, battleID, entry)

	slog.InfoContext(ctx, "battle choice-resolved",
		"battle_id", battleID,
		"outcome", outcome,
		"result", result)

	return &ChoiceResolveOutput{
		BattleID: battleID,
		Outcome:  outcome,
		State:    entry.session.State(),
	}, nil
}

// ChoiceRound applies one choice round to a live battle on the player's
// turn. The round replaces the player's regular action; the turn stays
// with the player afterwards.
func (o *orchestrator) ChoiceRound(
	ctx context.Context,
	input *ChoiceRoundInput,
) (*ChoiceRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Choice == nil {
		return nil, errors.InvalidArgument("choice is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	session := entry.session
	st := session.State()
	if !st.IsActive || st.Result.Terminal() || st.Enemy == nil {
		return nil, errors.FailedPrecondition("no active battle")
	}
	if st.Turn != vygddrasil.ActorPlayer {
		return nil, errors.FailedPrecondition("not the player's turn")
	}

	env := session.Env()
	out, err := combat.ResolveChoiceRound(o.diceRoller, &combat.ChoiceRoundInput{
		Player:           env.PlayerStats,
		PlayerAttackType: env.PlayerAttackType,
		Enemy:            st.Enemy,
		PlayerHP:         st.PlayerHP,
		EnemyHP:          st.EnemyHP,
		Choice:           input.Choice,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve choice round")
	}

	now := o.clock.Now()
	playerEntry := vygddrasil.BattleLogEntry{
		Turn:      st.TurnCount,
		Actor:     vygddrasil.ActorPlayer,
		Action:    input.Choice.Text,
		Timestamp: now,
	}
	if out.DamageToEnemy > 0 {
		damage := out.DamageToEnemy
		playerEntry.Damage = &damage
		playerEntry.IsCritical = out.Success && out.IsCritical
	}
	st.Log = append(st.Log, playerEntry)

	// The narrative is always logged; on a failed round it doubles as the
	// enemy's blow and carries that damage
	narrative := vygddrasil.BattleLogEntry{
		Turn:      st.TurnCount,
		Actor:     vygddrasil.ActorPlayer,
		Action:    out.Description,
		Timestamp: now,
	}
	if !out.Success {
		narrative.Actor = vygddrasil.ActorEnemy
		if out.DamageToPlayer > 0 {
			damage := out.DamageToPlayer
			narrative.Damage = &damage
			narrative.IsCritical = out.IsCritical
		}
	}
	st.Log = append(st.Log, narrative)

	// A successful round's counter-blow gets its own enemy entry
	if out.Success && out.DamageToPlayer > 0 {
		damage := out.DamageToPlayer
		st.Log = append(st.Log, vygddrasil.BattleLogEntry{
			Turn:      st.TurnCount,
			Actor:     vygddrasil.ActorEnemy,
			Action:    st.Enemy.Name + " strikes back",
			Damage:    &damage,
			Timestamp: now,
		})
	}

	st.PlayerHP = out.PlayerHP
	st.EnemyHP = out.EnemyHP
	st.TurnCount++

	switch {
	case st.PlayerHP <= 0:
		st.Result = vygddrasil.BattleDefeat
		st.IsActive = false
	case st.EnemyHP <= 0:
		st.Result = vygddrasil.BattleVictory
		st.IsActive = false
	}

	session.Replace(st)
	o.settleIfFinished(ctx, input.BattleID, entry)

	return &ChoiceRoundOutput{
		State:       session.State(),
		Success:     out.Success,
		Description: out.Description,
	}, nil
}

// registerResolved opens a session for an already-terminal state and files
// it in the registry
func (o *orchestrator) registerResolved(
	char *vygddrasil.Character,
	enemy *vygddrasil.Enemy,
	rewardCfg *vygddrasil.RewardConfig,
	st enginebattle.State,
) (string, *sessionEntry, error) {
	session, err := enginebattle.NewSession(&enginebattle.SessionConfig{
		Character: char,
		Roller:    o.diceRoller,
		Clock:     o.clock,
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create battle session")
	}
	session.Replace(st)

	battleID := o.idGen.Generate()
	entry := &sessionEntry{
		session:     session,
		characterID: char.ID,
		enemyID:     enemy.ID,
		enemyName:   enemy.Name,
		rewardCfg:   rewardCfg,
		participant: wrapCharacter(char),
		opponent:    wrapEnemy(enemy),
	}

	o.mu.Lock()
	o.sessions[battleID] = entry
	o.mu.Unlock()

	return battleID, entry, nil
}

// resultForOutcome maps a declared choice outcome onto the battle result
// lifecycle. Partial victory still counts as victory; the partial part
// shows up in rewards, not in the result.
func resultForOutcome(outcome vygddrasil.ChoiceOutcome) vygddrasil.BattleResult {
	switch outcome {
	case vygddrasil.OutcomeVictory, vygddrasil.OutcomePartialVictory:
		return vygddrasil.BattleVictory
	case vygddrasil.OutcomeEscape:
		return vygddrasil.BattleFled
	default:
		return vygddrasil.BattleDefeat
	}
}
