// Package battle implements the battle state machine: a BattleState value,
// pure transition functions over it, and a Session wrapper that holds the
// current state for one active battle.
package battle

import (
	vygddrasil "github.com/vygddrasil/battle-api/internal/entities/vygddrasil"
)

// State is the mutable battle session state. Transitions never mutate a
// State in place; they return a new value with the log extended.
type State struct {
	IsActive  bool             `json:"is_active"`
	Turn      vygddrasil.Actor `json:"turn"`
	TurnCount int32            `json:"turn_count"`

	PlayerHP    int32 `json:"player_hp"`
	PlayerMaxHP int32 `json:"player_max_hp"`
	PlayerMP    int32 `json:"player_mp"`
	PlayerMaxMP int32 `json:"player_max_mp"`
	EnemyHP     int32 `json:"enemy_hp"`
	EnemyMaxHP  int32 `json:"enemy_max_hp"`

	// Buff lists are tracked for forward compatibility; no current
	// transition populates them.
	PlayerBuffs []string `json:"player_buffs,omitempty"`
	EnemyBuffs  []string `json:"enemy_buffs,omitempty"`

	PlayerDefending bool `json:"player_defending"`

	Enemy   *vygddrasil.Enemy           `json:"enemy,omitempty"`
	Log     []vygddrasil.BattleLogEntry `json:"log"`
	Result  vygddrasil.BattleResult     `json:"result"`
	Rewards *vygddrasil.Rewards         `json:"rewards,omitempty"`
}

// Inactive returns the sentinel state of a session with no battle running
func Inactive() State {
	return State{
		IsActive: false,
		Turn:     vygddrasil.ActorPlayer,
		Result:   vygddrasil.BattleOngoing,
	}
}

// clone returns a copy of the state with its own log and buff slices. The
// enemy reference is shared; it is read-only to this package.
func (st State) clone() State {
	out := st
	if st.Log != nil {
		out.Log = make([]vygddrasil.BattleLogEntry, len(st.Log))
		copy(out.Log, st.Log)
	}
	if st.PlayerBuffs != nil {
		out.PlayerBuffs = append([]string(nil), st.PlayerBuffs...)
	}
	if st.EnemyBuffs != nil {
		out.EnemyBuffs = append([]string(nil), st.EnemyBuffs...)
	}
	return out
}

// acceptsPlayerAction reports whether a player action may run
func (st State) acceptsPlayerAction() bool {
	return st.IsActive &&
		st.Enemy != nil &&
		st.Result == vygddrasil.BattleOngoing &&
		st.Turn == vygddrasil.ActorPlayer
}

// acceptsEnemyAction reports whether an enemy action may run
func (st State) acceptsEnemyAction() bool {
	return st.IsActive &&
		st.Enemy != nil &&
		st.Result == vygddrasil.BattleOngoing &&
		st.Turn == vygddrasil.ActorEnemy
}
