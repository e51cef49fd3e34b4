package systems

import (
	"github.com/automoto/skirmish/components"
	"github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/session"
	"github.com/yohamta/donburi/ecs"
)

// NewCameraSystem returns an update system that follows the local ship's
// viewport. The first target snaps the camera; later ones are approached with
// config.Camera.FollowSmoothing. Without a local ship the camera holds still.
func NewCameraSystem(fleet *Fleet, sess session.Reader) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		camera.Width = float64(config.C.Width)
		camera.Height = float64(config.C.Height)

		p, ok := fleet.Ship(sess.LocalClientID())
		if !ok {
			return
		}
		target, err := p.Viewport()
		if err != nil {
			return
		}
		camera.Width = target.Width
		camera.Height = target.Height

		if !camera.Initialized {
			camera.Position.X = target.X
			camera.Position.Y = target.Y
			camera.Initialized = true
			return
		}

		// Smooth follow
		camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
	}
}
