package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Text draws a single line. The node origin is the top-left of the line.
type Text struct {
	Base
	Face font.Face

	text  string
	color color.Color
}

func NewText(s string, face font.Face, clr color.Color) *Text {
	return &Text{Base: newBase(), Face: face, text: s, color: clr}
}

func (t *Text) SetText(s string) {
	t.text = s
}

func (t *Text) Text() string {
	return t.text
}

func (t *Text) SetColor(clr color.Color) {
	t.color = clr
}

func (t *Text) Color() color.Color {
	return t.color
}

var textOp = &ebiten.DrawImageOptions{}

func (t *Text) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32) {
	if t.Face == nil || t.text == "" || !t.Visible() {
		return
	}
	// text.DrawWithOptions places the baseline at the origin.
	ascent := float64(t.Face.Metrics().Ascent.Ceil())
	textOp.GeoM.Reset()
	textOp.GeoM.Translate(0, ascent)
	textOp.GeoM.Concat(t.worldGeoM(parent))
	textOp.ColorScale.Reset()
	textOp.ColorScale.ScaleWithColor(t.color)
	textOp.ColorScale.ScaleAlpha(alpha * t.alpha)
	text.DrawWithOptions(dst, t.text, t.Face, textOp)
}
