package gamemath

// FixedPointScale converts fixed-point wire units to world units.
const FixedPointScale = 100.0

// Viewport is the visible world window. X and Y are the world point drawn at
// the centre of the screen; Width and Height are the screen size.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// WorldToScreen maps a world position into screen coordinates for vp.
func WorldToScreen(worldX, worldY float64, vp Viewport) (float64, float64) {
	return worldX - vp.X + vp.Width/2, worldY - vp.Y + vp.Height/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(screenX, screenY float64, vp Viewport) (float64, float64) {
	return screenX + vp.X - vp.Width/2, screenY + vp.Y - vp.Height/2
}

// ToWorld converts a fixed-point position to world units.
func ToWorld(fixed Vec2) Vec2 {
	return Vec2{X: fixed.X / FixedPointScale, Y: fixed.Y / FixedPointScale}
}

// Contains reports whether the screen point lies inside the viewport with the
// given margin on every side. Touching an edge still counts as inside.
func (vp Viewport) Contains(screenX, screenY, margin float64) bool {
	return screenX-margin >= 0 &&
		screenY-margin >= 0 &&
		screenX+margin <= vp.Width &&
		screenY+margin <= vp.Height
}
