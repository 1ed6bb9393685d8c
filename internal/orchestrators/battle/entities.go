package battle

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// CharacterEntity wraps vygddrasil.Character to implement core.Entity
type CharacterEntity struct {
	*vygddrasil.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return "character"
}

// EnemyEntity wraps vygddrasil.Enemy to implement core.Entity
type EnemyEntity struct {
	*vygddrasil.Enemy
}

// GetID returns the enemy's ID
func (e *EnemyEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *EnemyEntity) GetType() string {
	return "enemy"
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*CharacterEntity)(nil)
	_ core.Entity = (*EnemyEntity)(nil)
)

// wrapCharacter converts a vygddrasil.Character to a CharacterEntity
func wrapCharacter(c *vygddrasil.Character) *CharacterEntity {
	return &CharacterEntity{Character: c}
}

// wrapEnemy converts a vygddrasil.Enemy to an EnemyEntity
func wrapEnemy(e *vygddrasil.Enemy) *EnemyEntity {
	return &EnemyEntity{Enemy: e}
}
