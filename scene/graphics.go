package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// Filter is a post-processing effect drawn over a screen-space area.
type Filter interface {
	Apply(dst *ebiten.Image, area Rect)
}

type circle struct {
	cx, cy, r float64
	color     color.Color
}

// Graphics is a vector drawing surface with an optional filter slot. The
// filter, when set, is applied over FilterArea regardless of the node's own
// transform.
type Graphics struct {
	Base
	FilterArea Rect

	circles []circle
	filter  Filter
}

func NewGraphics() *Graphics {
	return &Graphics{Base: newBase()}
}

// FillCircle records a filled circle in node-local coordinates.
func (g *Graphics) FillCircle(cx, cy, r float64, clr color.Color) {
	g.circles = append(g.circles, circle{cx: cx, cy: cy, r: r, color: clr})
}

// SetFilters fills the filter slot. Passing no filters empties it; only the
// first filter is kept otherwise.
func (g *Graphics) SetFilters(filters ...Filter) {
	if len(filters) == 0 {
		g.filter = nil
		return
	}
	g.filter = filters[0]
}

// Filters returns the contents of the filter slot.
func (g *Graphics) Filters() []Filter {
	if g.filter == nil {
		return nil
	}
	return []Filter{g.filter}
}

func (g *Graphics) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32) {
	if !g.Visible() {
		return
	}
	geo := g.worldGeoM(parent)
	a := alpha * g.alpha
	for _, c := range g.circles {
		x, y := geo.Apply(c.cx, c.cy)
		r, gr, b, ca := c.color.RGBA()
		clr := color.RGBA64{
			R: uint16(float32(r) * a),
			G: uint16(float32(gr) * a),
			B: uint16(float32(b) * a),
			A: uint16(float32(ca) * a),
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(c.r), clr, true)
	}
	if g.filter != nil {
		g.filter.Apply(dst, g.FilterArea)
	}
}
