package netcomponents

import (
	"errors"
	"fmt"

	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ErrInvalidState is wrapped by every ShipStateData validation failure.
var ErrInvalidState = errors.New("invalid ship state")

// ShipStateData is the authoritative ship snapshot sent by the server.
// Position and Velocity are fixed-point units (100 per world unit); velocity
// is per second.
type ShipStateData struct {
	ID          string
	Position    gamemath.Vec2
	Velocity    gamemath.Vec2
	Facing      float64 // radians
	InputThrust bool
	HP          int
	MaxHP       int
}

var ShipState = donburi.NewComponentType[ShipStateData]()

// Validate rejects states that would corrupt the presentation.
func (s ShipStateData) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidState)
	case s.HP < 0 || s.MaxHP < 0:
		return fmt.Errorf("%w: ship %s has negative hp %d/%d", ErrInvalidState, s.ID, s.HP, s.MaxHP)
	case s.HP > s.MaxHP:
		return fmt.Errorf("%w: ship %s hp %d exceeds max %d", ErrInvalidState, s.ID, s.HP, s.MaxHP)
	case !s.Position.IsFinite() || !s.Velocity.IsFinite():
		return fmt.Errorf("%w: ship %s has non-finite motion", ErrInvalidState, s.ID)
	case !gamemath.IsFinite(s.Facing):
		return fmt.Errorf("%w: ship %s has non-finite facing", ErrInvalidState, s.ID)
	}
	return nil
}
