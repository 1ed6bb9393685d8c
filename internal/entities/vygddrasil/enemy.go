package vygddrasil

// Enemy represents an enemy definition, read-only to the battle core
type Enemy struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Level      int32      `json:"level"`
	Stats      Stats      `json:"stats"`
	AttackType AttackType `json:"attack_type"`
}
