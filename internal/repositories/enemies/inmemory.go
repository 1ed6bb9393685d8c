package enemies

import (
	"context"
	"sort"
	"sync"

	"github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*vygddrasil.Enemy
}

// NewInMemory creates a new in-memory repository seeded with the given enemies
func NewInMemory(seed []*vygddrasil.Enemy) *InMemoryRepository {
	store := make(map[string]*vygddrasil.Enemy, len(seed))
	for _, enemy := range seed {
		if enemy == nil || enemy.ID == "" {
			continue
		}
		copied := *enemy
		store[enemy.ID] = &copied
	}

	return &InMemoryRepository{
		store: store,
	}
}

// Get retrieves an enemy by ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	enemy, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("enemy %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	copied := *enemy
	return &GetOutput{Enemy: &copied}, nil
}

// List retrieves all enemies in the catalog, ordered by ID
func (r *InMemoryRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*vygddrasil.Enemy, 0, len(r.store))
	for _, enemy := range r.store {
		copied := *enemy
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return &ListOutput{Enemies: result}, nil
}

// DefaultCatalog returns the built-in enemy roster
func DefaultCatalog() []*vygddrasil.Enemy {
	return []*vygddrasil.Enemy{
		{
			ID:    "enemy_forest_wolf",
			Name:  "Forest Wolf",
			Level: 1,
			Stats: vygddrasil.Stats{
				Str: 8, Agi: 10, Int: 2, HP: 60, MP: 0, Luck: 3,
			},
			AttackType: vygddrasil.AttackTypePhysical,
		},
		{
			ID:    "enemy_cave_troll",
			Name:  "Cave Troll",
			Level: 3,
			Stats: vygddrasil.Stats{
				Str: 16, Agi: 4, Int: 2, HP: 140, MP: 0, Luck: 2,
			},
			AttackType: vygddrasil.AttackTypePhysical,
		},
		{
			ID:    "enemy_marsh_witch",
			Name:  "Marsh Witch",
			Level: 4,
			Stats: vygddrasil.Stats{
				Str: 5, Agi: 8, Int: 15, HP: 90, MP: 80, Luck: 6,
			},
			AttackType: vygddrasil.AttackTypeMagical,
		},
		{
			ID:    "enemy_shadow_knight",
			Name:  "Shadow Knight",
			Level: 6,
			Stats: vygddrasil.Stats{
				Str: 14, Agi: 12, Int: 12, HP: 180, MP: 60, Luck: 8,
			},
			AttackType: vygddrasil.AttackTypeMixed,
		},
	}
}
