package components

import (
	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position      math.Vec2 // world point at the centre of the screen
	Width, Height float64
	Initialized   bool // false until the first target snaps the camera
}

// Viewport converts the camera into the descriptor presenters consume.
func (c *CameraData) Viewport() gamemath.Viewport {
	return gamemath.Viewport{
		X:      c.Position.X,
		Y:      c.Position.Y,
		Width:  c.Width,
		Height: c.Height,
	}
}

var Camera = donburi.NewComponentType[CameraData]()
