// Package battlehistory provides persistence for finished battle records
package battlehistory

//go:generate mockgen -destination=mock/mock_repository.go -package=battlehistorymock github.com/vygddrasil/battle-api/internal/repositories/battlehistory Repository

import (
	"context"
	"time"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// BattleSummary is the derived record of one finished battle: the terminal
// result, the ordered log, and the resolved rewards
type BattleSummary struct {
	ID          string                      `json:"id"`
	CharacterID string                      `json:"character_id"`
	EnemyID     string                      `json:"enemy_id"`
	EnemyName   string                      `json:"enemy_name"`
	Result      vygddrasil.BattleResult     `json:"result"`
	TurnCount   int32                       `json:"turn_count"`
	Log         []vygddrasil.BattleLogEntry `json:"log"`
	Rewards     *vygddrasil.Rewards         `json:"rewards,omitempty"`
	FinishedAt  time.Time                   `json:"finished_at"`
}

// Repository defines the storage interface for battle history
type Repository interface {
	// Save stores a finished battle summary
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a battle summary by ID
	// Returns errors.NotFound if the summary doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCharacterID retrieves all battle summaries for a character
	ListByCharacterID(ctx context.Context, input ListByCharacterIDInput) (*ListByCharacterIDOutput, error)
}

// SaveInput defines the input for saving a battle summary
type SaveInput struct {
	Summary *BattleSummary
	// TTL bounds how long the record is retained; 0 uses the default
	TTL time.Duration
}

// SaveOutput defines the output for saving a battle summary
type SaveOutput struct {
	Summary *BattleSummary
}

// GetInput defines the input for getting a battle summary
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a battle summary
type GetOutput struct {
	Summary *BattleSummary
}

// ListByCharacterIDInput defines the input for listing summaries by character
type ListByCharacterIDInput struct {
	CharacterID string
}

// ListByCharacterIDOutput defines the output for listing summaries by character
type ListByCharacterIDOutput struct {
	Summaries []*BattleSummary
}
