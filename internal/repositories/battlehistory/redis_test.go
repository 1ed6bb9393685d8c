package battlehistory_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
	battlehistory "github.com/vygddrasil/battle-api/internal/repositories/battlehistory"
	"github.com/vygddrasil/battle-api/internal/testutils"
)

const testCharacterID = "char-test-001"

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    battlehistory.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClientWithSetup(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	repo, err := battlehistory.NewRedisRepository(&battlehistory.Config{
		Client: client,
		Clock:  clock.NewFixed(testTime),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newSummary(id string) *battlehistory.BattleSummary {
	dmg := int32(19)
	return &battlehistory.BattleSummary{
		ID:          id,
		CharacterID: testCharacterID,
		EnemyID:     "enemy-test-001",
		EnemyName:   "Bog Rat",
		Result:      vygddrasil.BattleVictory,
		TurnCount:   3,
		Log: []vygddrasil.BattleLogEntry{
			{Turn: 1, Actor: vygddrasil.ActorPlayer, Action: "Sigrid attacks Bog Rat", Damage: &dmg, Timestamp: testTime},
		},
		Rewards: &vygddrasil.Rewards{Exp: 50, Gold: 25},
	}
}

func (s *RedisRepositoryTestSuite) TestSave() {
	s.Run("successful save stamps time and applies the default retention", func() {
		output, err := s.repo.Save(s.ctx, battlehistory.SaveInput{Summary: s.newSummary("battle_1")})

		s.Require().NoError(err)
		s.Equal(testTime, output.Summary.FinishedAt)

		key := "battle_history:battle_1"
		s.True(s.mr.Exists(key))
		s.Equal(30*24*time.Hour, s.mr.TTL(key))

		members, err := s.mr.SMembers("battle_history:character:" + testCharacterID)
		s.Require().NoError(err)
		s.Equal([]string{"battle_1"}, members)
	})

	s.Run("explicit TTL and finished time are kept", func() {
		finished := testTime.Add(-time.Hour)
		summary := s.newSummary("battle_2")
		summary.FinishedAt = finished

		output, err := s.repo.Save(s.ctx, battlehistory.SaveInput{
			Summary: summary,
			TTL:     time.Hour,
		})

		s.Require().NoError(err)
		s.Equal(finished, output.Summary.FinishedAt)
		s.Equal(time.Hour, s.mr.TTL("battle_history:battle_2"))
	})

	s.Run("error when summary is nil", func() {
		output, err := s.repo.Save(s.ctx, battlehistory.SaveInput{})

		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("error when result is not terminal", func() {
		summary := s.newSummary("battle_3")
		summary.Result = vygddrasil.BattleOngoing

		output, err := s.repo.Save(s.ctx, battlehistory.SaveInput{Summary: summary})

		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "terminal")
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	s.Run("round trips a saved summary", func() {
		saved, err := s.repo.Save(s.ctx, battlehistory.SaveInput{Summary: s.newSummary("battle_1")})
		s.Require().NoError(err)

		output, err := s.repo.Get(s.ctx, battlehistory.GetInput{ID: "battle_1"})

		s.Require().NoError(err)
		s.Equal(saved.Summary.ID, output.Summary.ID)
		s.Equal(vygddrasil.BattleVictory, output.Summary.Result)
		s.Equal(int32(3), output.Summary.TurnCount)
		s.Require().Len(output.Summary.Log, 1)
		s.Require().NotNil(output.Summary.Log[0].Damage)
		s.Equal(int32(19), *output.Summary.Log[0].Damage)
		s.Require().NotNil(output.Summary.Rewards)
		s.Equal(int32(50), output.Summary.Rewards.Exp)
	})

	s.Run("not found", func() {
		output, err := s.repo.Get(s.ctx, battlehistory.GetInput{ID: "battle_missing"})

		s.Error(err)
		s.Nil(output)
		s.True(errors.IsNotFound(err))
	})

	s.Run("error when ID is empty", func() {
		output, err := s.repo.Get(s.ctx, battlehistory.GetInput{})

		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestListByCharacterID() {
	s.Run("lists all summaries for a character", func() {
		_, err := s.repo.Save(s.ctx, battlehistory.SaveInput{Summary: s.newSummary("battle_1")})
		s.Require().NoError(err)

		second := s.newSummary("battle_2")
		second.Result = vygddrasil.BattleFled
		second.Rewards = &vygddrasil.Rewards{}
		_, err = s.repo.Save(s.ctx, battlehistory.SaveInput{Summary: second})
		s.Require().NoError(err)

		output, err := s.repo.ListByCharacterID(s.ctx, battlehistory.ListByCharacterIDInput{
			CharacterID: testCharacterID,
		})

		s.Require().NoError(err)
		s.Len(output.Summaries, 2)
		ids := []string{output.Summaries[0].ID, output.Summaries[1].ID}
		s.ElementsMatch([]string{"battle_1", "battle_2"}, ids)
	})

	s.Run("expired records are pruned from the index", func() {
		_, err := s.repo.Save(s.ctx, battlehistory.SaveInput{
			Summary: s.newSummary("battle_expiring"),
			TTL:     time.Minute,
		})
		s.Require().NoError(err)

		s.mr.FastForward(2 * time.Minute)

		output, err := s.repo.ListByCharacterID(s.ctx, battlehistory.ListByCharacterIDInput{
			CharacterID: testCharacterID,
		})

		s.Require().NoError(err)
		for _, summary := range output.Summaries {
			s.NotEqual("battle_expiring", summary.ID)
		}
		members, err := s.mr.SMembers("battle_history:character:" + testCharacterID)
		if err == nil {
			s.NotContains(members, "battle_expiring")
		}
	})

	s.Run("error when character ID is empty", func() {
		output, err := s.repo.ListByCharacterID(s.ctx, battlehistory.ListByCharacterIDInput{})

		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
