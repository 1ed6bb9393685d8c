package battle

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/vygddrasil/battle-api/internal/engine/combat"
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
	"github.com/vygddrasil/battle-api/internal/errors"
	"github.com/vygddrasil/battle-api/internal/pkg/clock"
)

// SessionConfig holds the dependencies for a battle session
type SessionConfig struct {
	Character *vygddrasil.Character
	Roller    dice.Roller
	Clock     clock.Clock
}

// Validate ensures the session has a character bound
func (c *SessionConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Character == nil {
		return errors.InvalidArgument("character is required")
	}
	return nil
}

// Session owns exactly one battle state at a time and applies transitions
// to it. It is intended for single-writer access; concurrent battles need
// independent sessions.
type Session struct {
	env       Env
	character *vygddrasil.Character
	enemy     *vygddrasil.Enemy
	state     State
}

// NewSession creates a session for the character, starting inactive
func NewSession(cfg *SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Session{
		env: Env{
			Roller:           roller,
			Clock:            clk,
			PlayerName:       cfg.Character.Name,
			PlayerStats:      combat.TotalStats(cfg.Character),
			PlayerAttackType: combat.AttackTypeForClass(cfg.Character.Class),
		},
		character: cfg.Character,
		state:     Inactive(),
	}, nil
}

// Character returns the character bound to this session
func (s *Session) Character() *vygddrasil.Character {
	return s.character
}

// Env returns the session's transition environment
func (s *Session) Env() *Env {
	return &s.env
}

// State returns a snapshot of the current battle state
func (s *Session) State() State {
	return s.state.clone()
}

// Start begins a battle against the enemy. A nil enemy is a silent no-op.
func (s *Session) Start(enemy *vygddrasil.Enemy) {
	if enemy == nil {
		return
	}
	s.enemy = enemy
	s.state = Start(&s.env, enemy)
}

// PlayerAct applies one player action to the battle
func (s *Session) PlayerAct(action Action) error {
	next, err := ApplyPlayerAction(&s.env, s.state, action)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// EnemyAct applies the enemy's turn to the battle
func (s *Session) EnemyAct() error {
	next, err := ApplyEnemyAction(&s.env, s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Replace swaps in a wholesale-resolved state, as produced by the auto and
// choice resolvers
func (s *Session) Replace(st State) {
	s.enemy = st.Enemy
	s.state = st
}

// End resets the session to the inactive sentinel unconditionally
func (s *Session) End() {
	s.state = Inactive()
}

// Restart starts a fresh battle against the previous enemy, if any
func (s *Session) Restart() {
	if s.enemy == nil {
		return
	}
	s.Start(s.enemy)
}
