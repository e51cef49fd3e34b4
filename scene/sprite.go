package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws a single image with its top-left corner at the node origin.
type Sprite struct {
	Base
	Image *ebiten.Image
}

func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Base: newBase(), Image: img}
}

func (s *Sprite) Width() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dx())
}

func (s *Sprite) Height() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dy())
}

func (s *Sprite) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32) {
	drawImage(dst, s.Image, &s.Base, parent, alpha)
}

var drawOp = &ebiten.DrawImageOptions{}

func drawImage(dst, img *ebiten.Image, b *Base, parent ebiten.GeoM, alpha float32) {
	if img == nil || !b.Visible() {
		return
	}
	drawOp.GeoM = b.worldGeoM(parent)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(alpha * b.alpha)
	dst.DrawImage(img, drawOp)
}
