package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/repositories/character"
	charactermock "github.com/vygddrasil/battle-api/internal/repositories/character/mock"
)

func testCharacter() *vygddrasil.Character {
	return &vygddrasil.Character{
		ID:       "char-1",
		PlayerID: "player-1",
		Name:     "Sigrid",
		Class:    vygddrasil.ClassWarrior,
		Level:    1,
		BaseStats: vygddrasil.Stats{
			Str: 10, Agi: 5, Int: 4, HP: 100, MP: 30, Luck: 3,
		},
	}
}

func newTestService(t *testing.T) (Service, *charactermock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := charactermock.NewMockRepository(ctrl)

	service, err := NewOrchestrator(&Config{CharacterRepo: repo})
	require.NoError(t, err)
	return service, repo
}

func TestNewOrchestrator(t *testing.T) {
	service, err := NewOrchestrator(&Config{})
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestApplyExperience(t *testing.T) {
	ctx := context.Background()

	t.Run("level up applies stat growth", func(t *testing.T) {
		service, repo := newTestService(t)

		char := testCharacter()
		char.Experience = 90
		repo.EXPECT().
			Get(ctx, character.GetInput{ID: "char-1"}).
			Return(&character.GetOutput{Character: char}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
				assert.Equal(t, int32(4), input.Character.Level)
				assert.Equal(t, int32(5), input.Character.Experience)
				assert.Equal(t, vygddrasil.Stats{
					Str: 13, Agi: 8, Int: 7, HP: 130, MP: 45, Luck: 6,
				}, input.Character.BaseStats)
				return &character.UpdateOutput{Character: input.Character}, nil
			})

		out, err := service.ApplyExperience(ctx, &ApplyExperienceInput{
			CharacterID: "char-1",
			Exp:         215,
		})
		require.NoError(t, err)
		assert.True(t, out.LeveledUp)
		assert.Equal(t, int32(3), out.LevelsGained)
		assert.Equal(t, int32(4), out.Character.Level)
	})

	t.Run("below threshold only accumulates", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().
			Get(ctx, character.GetInput{ID: "char-1"}).
			Return(&character.GetOutput{Character: testCharacter()}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
				assert.Equal(t, int32(1), input.Character.Level)
				assert.Equal(t, int32(40), input.Character.Experience)
				return &character.UpdateOutput{Character: input.Character}, nil
			})

		out, err := service.ApplyExperience(ctx, &ApplyExperienceInput{
			CharacterID: "char-1",
			Exp:         40,
		})
		require.NoError(t, err)
		assert.False(t, out.LeveledUp)
	})

	t.Run("negative exp rejected", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.ApplyExperience(ctx, &ApplyExperienceInput{
			CharacterID: "char-1",
			Exp:         -1,
		})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unknown character", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().
			Get(ctx, character.GetInput{ID: "missing"}).
			Return(nil, errors.NotFound("character not found"))

		_, err := service.ApplyExperience(ctx, &ApplyExperienceInput{
			CharacterID: "missing",
			Exp:         10,
		})
		assert.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestApplyStatBonus(t *testing.T) {
	ctx := context.Background()

	t.Run("bonus lands on bonus stats, not base stats", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().
			Get(ctx, character.GetInput{ID: "char-1"}).
			Return(&character.GetOutput{Character: testCharacter()}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
				assert.Equal(t, int32(10), input.Character.BaseStats.Str)
				assert.Equal(t, int32(3), input.Character.BonusStats.Str)
				return &character.UpdateOutput{Character: input.Character}, nil
			})

		out, err := service.ApplyStatBonus(ctx, &ApplyStatBonusInput{
			CharacterID: "char-1",
			Bonus:       &vygddrasil.StatBonus{Stat: vygddrasil.StatStr, Value: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, int32(3), out.Character.BonusStats.Str)
	})

	t.Run("unknown stat rejected", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().
			Get(ctx, character.GetInput{ID: "char-1"}).
			Return(&character.GetOutput{Character: testCharacter()}, nil)

		_, err := service.ApplyStatBonus(ctx, &ApplyStatBonusInput{
			CharacterID: "char-1",
			Bonus:       &vygddrasil.StatBonus{Stat: "charisma", Value: 1},
		})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
