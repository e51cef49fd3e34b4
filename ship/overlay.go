package ship

import (
	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/scene"
	"github.com/automoto/skirmish/shared/gamemath"
)

// OutOfView reports whether the health overlay centred on the screen point
// (x, y) would cross any viewport edge.
func OutOfView(x, y float64, vp gamemath.Viewport) bool {
	return !vp.Contains(x, y, cfg.Ship.HealthBarRadius)
}

// OverlayRect is the screen-space area the health overlay shades around a
// ship drawn at (x, y).
func OverlayRect(x, y float64) scene.Rect {
	r := cfg.Ship.HealthBarRadius
	return scene.Rect{X: x - r, Y: y - r, W: 2 * r, H: 2 * r}
}
