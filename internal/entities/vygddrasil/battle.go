package vygddrasil

import "time"

// Actor identifies which side of a battle performed an action
type Actor string

// Actor constants
const (
	ActorPlayer Actor = "player"
	ActorEnemy  Actor = "enemy"
)

// BattleResult is the lifecycle result of a battle. It transitions only
// from ongoing to one of the terminal values and never back.
type BattleResult string

// Battle result constants
const (
	BattleOngoing BattleResult = "ongoing"
	BattleVictory BattleResult = "victory"
	BattleDefeat  BattleResult = "defeat"
	BattleFled    BattleResult = "fled"
)

// Terminal reports whether the result ends the battle
func (r BattleResult) Terminal() bool {
	return r != BattleOngoing
}

// BattleLogEntry records one combat event. The ordered sequence of entries
// is the authoritative record of a battle and is persisted verbatim by the
// history recorder.
type BattleLogEntry struct {
	Turn       int32     `json:"turn"`
	Actor      Actor     `json:"actor"`
	Action     string    `json:"action"`
	Damage     *int32    `json:"damage,omitempty"`
	Heal       *int32    `json:"heal,omitempty"`
	IsCritical bool      `json:"is_critical,omitempty"`
	IsDodged   bool      `json:"is_dodged,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
