// Package battle implements the battle orchestrator: it binds characters
// and enemies to battle sessions, applies actions, and records finished
// battles.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/vygddrasil/battle-api/internal/orchestrators/battle Service

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	enginebattle "github.com/vygddrasil/battle-api/internal/engine/battle"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/orchestrators/progression"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
	"github.com/vygddrasil/battle-api/internal/pkg/idgen"
	"github.com/vygddrasil/battle-api/internal/repositories/battlehistory"
	"github.com/vygddrasil/battle-api/internal/repositories/character"
	"github.com/vygddrasil/battle-api/internal/repositories/enemies"
)

// Service defines the interface for battle operations
type Service interface {
	// Session lifecycle
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)
	RestartBattle(ctx context.Context, input *RestartBattleInput) (*RestartBattleOutput, error)

	// Turn-based play
	PlayerAction(ctx context.Context, input *PlayerActionInput) (*PlayerActionOutput, error)
	EnemyAction(ctx context.Context, input *EnemyActionInput) (*EnemyActionOutput, error)
	ChoiceRound(ctx context.Context, input *ChoiceRoundInput) (*ChoiceRoundOutput, error)

	// Whole-battle resolution
	AutoResolve(ctx context.Context, input *AutoResolveInput) (*AutoResolveOutput, error)
	ChoiceResolve(ctx context.Context, input *ChoiceResolveInput) (*ChoiceResolveOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	CharacterRepo character.Repository
	EnemyRepo     enemies.Repository
	HistoryRepo   battlehistory.Repository
	EventBus      events.EventBus
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	DiceRoller    dice.Roller

	// Progression is optional; when set, victory experience is applied
	// to the character as battles finish
	Progression progression.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.EnemyRepo == nil {
		vb.RequiredField("EnemyRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

// sessionEntry ties one live battle session to the identities and reward
// configuration it was started with
type sessionEntry struct {
	session     *enginebattle.Session
	characterID string
	enemyID     string
	enemyName   string
	rewardCfg   *vygddrasil.RewardConfig
	participant core.Entity
	opponent    core.Entity
}

type orchestrator struct {
	characterRepo character.Repository
	enemyRepo     enemies.Repository
	historyRepo   battlehistory.Repository
	eventBus      events.EventBus
	idGen         idgen.Generator
	clock         clock.Clock
	diceRoller    dice.Roller
	progression   progression.Service

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		enemyRepo:     cfg.EnemyRepo,
		historyRepo:   cfg.HistoryRepo,
		eventBus:      cfg.EventBus,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		diceRoller:    cfg.DiceRoller,
		progression:   cfg.Progression,
		sessions:      make(map[string]*sessionEntry),
	}, nil
}

func (o *orchestrator) entry(battleID string) (*sessionEntry, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	entry, ok := o.sessions[battleID]
	if !ok {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	return entry, nil
}
