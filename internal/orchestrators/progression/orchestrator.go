// Package progression implements experience application and level-up
// handling for characters.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/vygddrasil/battle-api/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"

	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/repositories/character"
)

// Service defines the interface for progression operations
type Service interface {
	// ApplyExperience adds experience to a character, handling any level
	// ups the gain triggers
	ApplyExperience(ctx context.Context, input *ApplyExperienceInput) (*ApplyExperienceOutput, error)

	// ApplyStatBonus adds a permanent stat bonus to a character
	ApplyStatBonus(ctx context.Context, input *ApplyStatBonusInput) (*ApplyStatBonusOutput, error)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	CharacterRepo character.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// ApplyExperienceInput defines the input for applying experience
type ApplyExperienceInput struct {
	CharacterID string
	Exp         int32
}

// ApplyExperienceOutput defines the output for applying experience
type ApplyExperienceOutput struct {
	Character    *vygddrasil.Character
	LeveledUp    bool
	LevelsGained int32
}

// ApplyExperience adds experience to the character and persists the result.
// Each level gained grants the fixed stat growth on top of base stats.
func (o *orchestrator) ApplyExperience(
	ctx context.Context,
	input *ApplyExperienceInput,
) (*ApplyExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Exp < 0 {
		return nil, errors.InvalidArgument("experience cannot be negative")
	}

	getOutput, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	char := getOutput.Character
	result := combat.CheckLevelUp(char.Level, char.Experience, input.Exp)

	char.Level = result.NewLevel
	char.Experience = result.NewExp
	if result.LeveledUp {
		char.BaseStats = char.BaseStats.Add(combat.LevelUpStatBonus(result.LevelsGained))
	}

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", input.CharacterID)
	}

	if result.LeveledUp {
		slog.InfoContext(ctx, "character leveled up",
			"character_id", input.CharacterID,
			"new_level", result.NewLevel,
			"levels_gained", result.LevelsGained)
	}

	return &ApplyExperienceOutput{
		Character:    updateOutput.Character,
		LeveledUp:    result.LeveledUp,
		LevelsGained: result.LevelsGained,
	}, nil
}

// ApplyStatBonusInput defines the input for applying a stat bonus
type ApplyStatBonusInput struct {
	CharacterID string
	Bonus       *vygddrasil.StatBonus
}

// ApplyStatBonusOutput defines the output for applying a stat bonus
type ApplyStatBonusOutput struct {
	Character *vygddrasil.Character
}

// ApplyStatBonus adds a permanent bonus to the character's bonus stats and
// persists the result
func (o *orchestrator) ApplyStatBonus(
	ctx context.Context,
	input *ApplyStatBonusInput,
) (*ApplyStatBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Bonus == nil {
		return nil, errors.InvalidArgument("bonus is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	char := getOutput.Character
	var delta vygddrasil.Stats
	switch input.Bonus.Stat {
	case vygddrasil.StatStr:
		delta.Str = input.Bonus.Value
	case vygddrasil.StatAgi:
		delta.Agi = input.Bonus.Value
	case vygddrasil.StatInt:
		delta.Int = input.Bonus.Value
	case vygddrasil.StatHP:
		delta.HP = input.Bonus.Value
	case vygddrasil.StatMP:
		delta.MP = input.Bonus.Value
	case vygddrasil.StatLuck:
		delta.Luck = input.Bonus.Value
	default:
		return nil, errors.InvalidArgumentf("unknown stat %q", input.Bonus.Stat)
	}
	char.BonusStats = char.BonusStats.Add(delta)

	updateOutput, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", input.CharacterID)
	}

	return &ApplyStatBonusOutput{Character: updateOutput.Character}, nil
}
