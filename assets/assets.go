package assets

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ShipWidth  = 43
	ShipHeight = 39

	thrustFrameCount  = 4
	thrustFrameWidth  = 24
	thrustFrameHeight = 24
)

var (
	shipOnce   sync.Once
	shipImage  *ebiten.Image
	thrustOnce sync.Once
	thrust     []*ebiten.Image

	hullColor    = color.RGBA{R: 180, G: 190, B: 210, A: 255}
	cockpitColor = color.RGBA{R: 60, G: 140, B: 255, A: 255}
	flameOuter   = color.RGBA{R: 255, G: 120, B: 20, A: 230}
	flameInner   = color.RGBA{R: 255, G: 230, B: 120, A: 255}
)

// ShipTexture returns the hull image. The ship points along +X so that a
// facing of 0 radians points right.
func ShipTexture() *ebiten.Image {
	shipOnce.Do(func() {
		img := ebiten.NewImage(ShipWidth, ShipHeight)
		vector.DrawFilledRect(img, 4, 12, 26, 15, hullColor, true)
		vector.DrawFilledRect(img, 0, 2, 14, 8, hullColor, true)
		vector.DrawFilledRect(img, 0, 29, 14, 8, hullColor, true)
		vector.DrawFilledCircle(img, 30, 19.5, 10, hullColor, true)
		vector.DrawFilledCircle(img, 32, 19.5, 4, cockpitColor, true)
		shipImage = img
	})
	return shipImage
}

// ThrustFrames returns the engine flame frames, flickering from short to
// long.
func ThrustFrames() []*ebiten.Image {
	thrustOnce.Do(func() {
		for i := 0; i < thrustFrameCount; i++ {
			img := ebiten.NewImage(thrustFrameWidth, thrustFrameHeight)
			length := float32(10 + 3*i)
			cy := float32(thrustFrameHeight) / 2
			vector.DrawFilledRect(img, float32(thrustFrameWidth)-length, cy-4, length, 8, flameOuter, true)
			vector.DrawFilledCircle(img, float32(thrustFrameWidth)-length, cy, 4, flameOuter, true)
			vector.DrawFilledRect(img, float32(thrustFrameWidth)-length/2, cy-2, length/2, 4, flameInner, true)
			thrust = append(thrust, img)
		}
	})
	return thrust
}
