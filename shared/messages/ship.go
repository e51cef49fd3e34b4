package messages

import "github.com/automoto/skirmish/shared/netcomponents"

// ShipSnapshot is the authoritative state of every live ship. Ships missing
// from a snapshot are gone.
type ShipSnapshot struct {
	Tick  uint32
	Ships []netcomponents.ShipStateData
}

// Roster maps ship ids to display names. It replaces any earlier roster.
type Roster struct {
	Names map[string]string
}

// KillEvent is broadcast when a ship is destroyed. KillerID is empty for
// environmental deaths.
type KillEvent struct {
	VictimID string
	KillerID string
}

// RespawnEvent is broadcast when a destroyed ship re-enters the arena.
type RespawnEvent struct {
	ShipID string
}
