package systems

import (
	"math"

	"github.com/automoto/skirmish/components"
	cfg "github.com/automoto/skirmish/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// gridSpacing is the world distance between backdrop markers.
const gridSpacing = 128.0

// DrawBackdrop fills the screen and scatters world-anchored markers so that
// camera motion stays visible in empty space.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SpaceBlack)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	minX := camera.Position.X - width/2
	minY := camera.Position.Y - height/2
	startX := math.Floor(minX/gridSpacing) * gridSpacing
	startY := math.Floor(minY/gridSpacing) * gridSpacing

	for wx := startX; wx <= minX+width; wx += gridSpacing {
		for wy := startY; wy <= minY+height; wy += gridSpacing {
			vector.FillRect(screen, float32(wx-minX), float32(wy-minY), 2, 2, cfg.LightGreen, false)
		}
	}
}

// DrawShips renders the scene graph every presenter attaches to.
func (f *Fleet) DrawShips(e *ecs.ECS, screen *ebiten.Image) {
	f.root.Draw(screen)
}
