package effects

import (
	"github.com/automoto/skirmish/assets"
	cfg "github.com/automoto/skirmish/config"
	"github.com/automoto/skirmish/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar shades an hp ring over its filter area. It falls back to a flat
// bar along the bottom of the area when the shader is not loaded.
type HealthBar struct {
	hp    int
	maxHP int
}

func NewHealthBar() *HealthBar {
	return &HealthBar{}
}

func (h *HealthBar) SetHPs(hp, maxHP int) {
	h.hp, h.maxHP = hp, maxHP
}

// HPs returns the [current, max] pair the bar renders.
func (h *HealthBar) HPs() [2]int {
	return [2]int{h.hp, h.maxHP}
}

// Ratio is hp/max clamped to [0, 1]; zero max reads as empty.
func (h *HealthBar) Ratio() float64 {
	if h.maxHP <= 0 {
		return 0
	}
	r := float64(h.hp) / float64(h.maxHP)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

var shaderOp = &ebiten.DrawRectShaderOptions{}

func (h *HealthBar) Apply(dst *ebiten.Image, area scene.Rect) {
	if assets.HealthBarShader == nil {
		h.drawFallback(dst, area)
		return
	}
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(area.X, area.Y)
	shaderOp.Uniforms = map[string]any{
		"HP":     float32(h.hp),
		"MaxHP":  float32(h.maxHP),
		"Origin": []float32{float32(area.X), float32(area.Y)},
		"Size":   []float32{float32(area.W), float32(area.H)},
	}
	dst.DrawRectShader(int(area.W), int(area.H), assets.HealthBarShader, shaderOp)
}

func (h *HealthBar) drawFallback(dst *ebiten.Image, area scene.Rect) {
	barHeight := cfg.UI.HealthBarHeight
	x := float32(area.X)
	y := float32(area.Y + area.H - barHeight)
	w := float32(area.W)
	vector.DrawFilledRect(dst, x, y, w, float32(barHeight), cfg.Red, false)
	vector.DrawFilledRect(dst, x, y, w*float32(h.Ratio()), float32(barHeight), cfg.Green, false)
}
