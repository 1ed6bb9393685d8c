package battle

import (
	enginebattle "github.com/vygddrasil/battle-api/internal/engine/battle"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// StartBattleInput defines the input for starting a battle
type StartBattleInput struct {
	CharacterID string
	EnemyID     string
	// RewardConfig is optional; nil means the battle yields no rewards
	RewardConfig *vygddrasil.RewardConfig
}

// StartBattleOutput defines the output for starting a battle
type StartBattleOutput struct {
	BattleID string
	State    enginebattle.State
}

// GetBattleInput defines the input for inspecting a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the output for inspecting a battle
type GetBattleOutput struct {
	BattleID    string
	CharacterID string
	EnemyID     string
	State       enginebattle.State
}

// EndBattleInput defines the input for ending a battle
type EndBattleInput struct {
	BattleID string
}

// EndBattleOutput defines the output for ending a battle
type EndBattleOutput struct {
	State enginebattle.State
}

// RestartBattleInput defines the input for restarting a battle
type RestartBattleInput struct {
	BattleID string
}

// RestartBattleOutput defines the output for restarting a battle. The
// restarted battle runs under a fresh battle ID so its record never
// overwrites the previous attempt's history.
type RestartBattleOutput struct {
	BattleID string
	State    enginebattle.State
}

// PlayerActionInput defines the input for applying a player action
type PlayerActionInput struct {
	BattleID string
	Action   enginebattle.Action
}

// PlayerActionOutput defines the output for applying a player action
type PlayerActionOutput struct {
	State enginebattle.State
}

// EnemyActionInput defines the input for resolving the enemy's turn
type EnemyActionInput struct {
	BattleID string
}

// EnemyActionOutput defines the output for resolving the enemy's turn
type EnemyActionOutput struct {
	State enginebattle.State
}

// ChoiceRoundInput defines the input for one choice round in a live battle
type ChoiceRoundInput struct {
	BattleID string
	Choice   *vygddrasil.BattleChoice
}

// ChoiceRoundOutput defines the output for one choice round
type ChoiceRoundOutput struct {
	State       enginebattle.State
	Success     bool
	Description string
}

// AutoResolveInput defines the input for simulating a whole battle
type AutoResolveInput struct {
	CharacterID  string
	EnemyID      string
	RewardConfig *vygddrasil.RewardConfig
}

// AutoResolveOutput defines the output for a simulated battle
type AutoResolveOutput struct {
	BattleID string
	State    enginebattle.State
}

// ChoiceResolveInput defines the input for resolving an encounter from a
// single choice
type ChoiceResolveInput struct {
	CharacterID  string
	EnemyID      string
	Choice       *vygddrasil.BattleChoice
	RewardConfig *vygddrasil.RewardConfig
}

// ChoiceResolveOutput defines the output for a choice-resolved encounter
type ChoiceResolveOutput struct {
	BattleID string
	Outcome  vygddrasil.ChoiceOutcome
	State    enginebattle.State
}
