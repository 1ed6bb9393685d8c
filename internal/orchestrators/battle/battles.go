package battle

import (
	"context"
	"log/slog"

	enginebattle "github.com/vygddrasil/battle-api/internal/engine/battle"
	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/orchestrators/progression"
	"github.com/vygddrasil/battle-api/internal/repositories/battlehistory"
	"github.com/vygddrasil/battle-api/internal/repositories/character"
	"github.com/vygddrasil/battle-api/internal/repositories/enemies"
)

// StartBattle loads both participants, opens a session, and begins the
// battle on the player's turn
func (o *orchestrator) StartBattle(
	ctx context.Context,
	input *StartBattleInput,
) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, enemy, err := o.loadParticipants(ctx, input.CharacterID, input.EnemyID)
	if err != nil {
		return nil, err
	}

	session, err := enginebattle.NewSession(&enginebattle.SessionConfig{
		Character: char,
		Roller:    o.diceRoller,
		Clock:     o.clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle session")
	}
	session.Start(enemy)

	battleID := o.idGen.Generate()
	entry := &sessionEntry{
		session:     session,
		characterID: char.ID,
		enemyID:     enemy.ID,
		enemyName:   enemy.Name,
		rewardCfg:   input.RewardConfig,
		participant: wrapCharacter(char),
		opponent:    wrapEnemy(enemy),
	}

	o.mu.Lock()
	o.sessions[battleID] = entry
	o.mu.Unlock()

	slog.InfoContext(ctx, "battle started",
		"battle_id", battleID,
		"participant_id", entry.participant.GetID(),
		"participant_type", entry.participant.GetType(),
		"opponent_id", entry.opponent.GetID(),
		"opponent_type", entry.opponent.GetType())

	return &StartBattleOutput{
		BattleID: battleID,
		State:    session.State(),
	}, nil
}

// GetBattle returns a snapshot of a battle's current state
func (o *orchestrator) GetBattle(
	ctx context.Context,
	input *GetBattleInput,
) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{
		BattleID:    input.BattleID,
		CharacterID: entry.characterID,
		EnemyID:     entry.enemyID,
		State:       entry.session.State(),
	}, nil
}

// EndBattle drops the session back to inactive, regardless of progress.
// Ending an unfinished battle forfeits it; nothing is recorded.
func (o *orchestrator) EndBattle(
	ctx context.Context,
	input *EndBattleInput,
) (*EndBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	entry.session.End()
	slog.InfoContext(ctx, "battle ended", "battle_id", input.BattleID)

	return &EndBattleOutput{State: entry.session.State()}, nil
}

// RestartBattle begins a fresh battle against the same enemy. The session
// moves to a new battle ID; each attempt keeps its own history record.
func (o *orchestrator) RestartBattle(
	ctx context.Context,
	input *RestartBattleInput,
) (*RestartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	entry.session.Restart()

	battleID := o.idGen.Generate()
	o.mu.Lock()
	delete(o.sessions, input.BattleID)
	o.sessions[battleID] = entry
	o.mu.Unlock()

	slog.InfoContext(ctx, "battle restarted",
		"battle_id", battleID,
		"previous_battle_id", input.BattleID)

	return &RestartBattleOutput{
		BattleID: battleID,
		State:    entry.session.State(),
	}, nil
}

// PlayerAction applies one player action, then settles the battle if the
// action finished it
func (o *orchestrator) PlayerAction(
	ctx context.Context,
	input *PlayerActionInput,
) (*PlayerActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	if err := entry.session.PlayerAct(input.Action); err != nil {
		return nil, errors.Wrap(err, "failed to apply player action")
	}
	o.settleIfFinished(ctx, input.BattleID, entry)

	return &PlayerActionOutput{State: entry.session.State()}, nil
}

// EnemyAction resolves the enemy's turn, then settles the battle if the
// turn finished it
func (o *orchestrator) EnemyAction(
	ctx context.Context,
	input *EnemyActionInput,
) (*EnemyActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entry, err := o.entry(input.BattleID)
	if err != nil {
		return nil, err
	}

	if err := entry.session.EnemyAct(); err != nil {
		return nil, errors.Wrap(err, "failed to apply enemy action")
	}
	o.settleIfFinished(ctx, input.BattleID, entry)

	return &EnemyActionOutput{State: entry.session.State()}, nil
}

// loadParticipants fetches the character and the enemy for a battle
func (o *orchestrator) loadParticipants(
	ctx context.Context,
	characterID, enemyID string,
) (*vygddrasil.Character, *vygddrasil.Enemy, error) {
	if characterID == "" {
		return nil, nil, errors.InvalidArgument("character ID is required")
	}
	if enemyID == "" {
		return nil, nil, errors.InvalidArgument("enemy ID is required")
	}

	charOutput, err := o.characterRepo.Get(ctx, character.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	enemyOutput, err := o.enemyRepo.Get(ctx, enemies.GetInput{ID: enemyID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get enemy %s", enemyID)
	}

	return charOutput.Character, enemyOutput.Enemy, nil
}

// settleIfFinished resolves rewards and records history once a battle
// reaches a terminal result. It runs at most once per battle; a state that
// already carries rewards has been settled.
func (o *orchestrator) settleIfFinished(ctx context.Context, battleID string, entry *sessionEntry) {
	st := entry.session.State()
	if !st.Result.Terminal() || st.Rewards != nil {
		return
	}

	rewards, err := combat.CalculateRewards(o.diceRoller, entry.rewardCfg, st.Result == vygddrasil.BattleVictory)
	if err != nil {
		slog.WarnContext(ctx, "failed to calculate rewards",
			"battle_id", battleID,
			"error", err)
		rewards = &vygddrasil.Rewards{}
	}
	st.Rewards = rewards
	entry.session.Replace(st)

	o.recordHistory(ctx, battleID, entry, st)
	o.applyRewards(ctx, entry.characterID, rewards)
}

// recordHistory saves the finished battle. Failures are logged, not
// surfaced; history is derived data.
func (o *orchestrator) recordHistory(
	ctx context.Context,
	battleID string,
	entry *sessionEntry,
	st enginebattle.State,
) {
	_, err := o.historyRepo.Save(ctx, battlehistory.SaveInput{
		Summary: &battlehistory.BattleSummary{
			ID:          battleID,
			CharacterID: entry.characterID,
			EnemyID:     entry.enemyID,
			EnemyName:   entry.enemyName,
			Result:      st.Result,
			TurnCount:   st.TurnCount,
			Log:         st.Log,
			Rewards:     st.Rewards,
			FinishedAt:  o.clock.Now(),
		},
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record battle history",
			"battle_id", battleID,
			"error", err)
	}
}

// applyRewards feeds earned experience and stat bonuses into progression
// when a progression service is configured. Failures are logged, not
// surfaced.
func (o *orchestrator) applyRewards(ctx context.Context, characterID string, rewards *vygddrasil.Rewards) {
	if o.progression == nil || rewards == nil {
		return
	}

	if rewards.Exp > 0 {
		_, err := o.progression.ApplyExperience(ctx, &progression.ApplyExperienceInput{
			CharacterID: characterID,
			Exp:         rewards.Exp,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to apply experience",
				"character_id", characterID,
				"error", err)
		}
	}

	if rewards.StatBonus != nil {
		_, err := o.progression.ApplyStatBonus(ctx, &progression.ApplyStatBonusInput{
			CharacterID: characterID,
			Bonus:       rewards.StatBonus,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to apply stat bonus",
				"character_id", characterID,
				"error", err)
		}
	}
}
