package types

import "github.com/cbodonnell/hanabi/pkg/game/constants"

// Session is a read-only view of the local client's mode flags for the current table.
type Session struct {
	Speedrun           bool `json:"speedrun"`
	Replay             bool `json:"replay"`
	Spectating         bool `json:"spectating"`
	SharedReplay       bool `json:"sharedReplay"`
	SharedReplayLeader bool `json:"sharedReplayLeader"`
	UseSharedTurns     bool `json:"useSharedTurns"`

	// Clues is the number of clue tokens remaining.
	Clues int `json:"clues"`
	// PlayerUs is the index of the local player.
	PlayerUs int `json:"playerUs"`

	Variant *Variant `json:"-"`
}

// SpeedrunActive reports whether clicks use the speedrun bindings.
// Replays and spectating always use the normal bindings.
func (s *Session) SpeedrunActive() bool {
	return s.Speedrun && !s.Replay && !s.Spectating
}

// InReplay reports whether the client is in a solo or shared replay.
func (s *Session) InReplay() bool {
	return s.Replay || s.SharedReplay
}

// LeadsSharedTurns reports whether the local client drives a shared replay.
func (s *Session) LeadsSharedTurns() bool {
	return s.SharedReplay && s.SharedReplayLeader && s.UseSharedTurns
}

// CanDiscard reports whether a discard is allowed at the current clue count.
func (s *Session) CanDiscard() bool {
	return s.Clues < constants.MaxClueNum
}

// Clue is a clue type and value pair.
type Clue struct {
	Type  constants.ClueType `json:"type"`
	Value int                `json:"value"`
}
