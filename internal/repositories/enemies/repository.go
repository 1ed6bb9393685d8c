// Package enemies provides access to the enemy catalog
package enemies

//go:generate mockgen -destination=mock/mock_repository.go -package=enemiesmock github.com/vygddrasil/battle-api/internal/repositories/enemies Repository

import (
	"context"

	"github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// Repository defines the interface for enemy catalog access
type Repository interface {
	// Get retrieves an enemy by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all enemies in the catalog
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput contains the ID of the enemy to retrieve
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved enemy
type GetOutput struct {
	Enemy *vygddrasil.Enemy
}

// ListInput is reserved for future filtering options
type ListInput struct{}

// ListOutput contains the full enemy catalog
type ListOutput struct {
	Enemies []*vygddrasil.Enemy
}
