package battlehistory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
	redisclient "github.com/vygddrasil/battle-api/internal/redis"
)

const (
	summaryKeyPrefix     = "battle_history:"
	characterIndexPrefix = "battle_history:character:"

	// defaultTTL bounds how long battle records are retained
	defaultTTL = 30 * 24 * time.Hour

	// Error messages
	errSummaryNil        = "summary cannot be nil"
	errSummaryIDEmpty    = "summary ID cannot be empty"
	errCharacterIDEmpty  = "character ID cannot be empty"
	errSummaryResultOpen = "summary result must be terminal"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores a finished battle summary with the retention TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Summary == nil {
		return nil, errors.InvalidArgument(errSummaryNil)
	}
	if input.Summary.ID == "" {
		return nil, errors.InvalidArgument(errSummaryIDEmpty)
	}
	if input.Summary.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if !input.Summary.Result.Terminal() {
		return nil, errors.InvalidArgument(errSummaryResultOpen)
	}

	summary := *input.Summary
	if summary.FinishedAt.IsZero() {
		summary.FinishedAt = r.clock.Now()
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	data, err := json.Marshal(&summary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal summary")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, summaryKeyPrefix+summary.ID, data, ttl)
	pipe.SAdd(ctx, characterIndexPrefix+summary.CharacterID, summary.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store summary")
	}

	return &SaveOutput{Summary: &summary}, nil
}

// Get retrieves a battle summary by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSummaryIDEmpty)
	}

	result, err := r.client.Get(ctx, summaryKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle summary %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get summary")
	}

	var summary BattleSummary
	if err := json.Unmarshal([]byte(result), &summary); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal summary")
	}

	return &GetOutput{Summary: &summary}, nil
}

// ListByCharacterID retrieves all retained battle summaries for a character
func (r *redisRepository) ListByCharacterID(
	ctx context.Context,
	input ListByCharacterIDInput,
) (*ListByCharacterIDOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	indexKey := characterIndexPrefix + input.CharacterID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index %s", indexKey)
	}

	summaries := make([]*BattleSummary, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Expired records leave dangling index entries; repair as we go
			if errors.IsNotFound(err) {
				slog.DebugContext(ctx, "battle summary expired, cleaning up index",
					"summary_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get summary %s", id)
		}
		summaries = append(summaries, getOutput.Summary)
	}

	return &ListByCharacterIDOutput{Summaries: summaries}, nil
}
