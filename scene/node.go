// Package scene is a small retained scene graph drawn with ebiten. Nodes are
// positioned relative to their parent container: a node's pivot is moved to
// its position, then it is rotated around that pivot.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Node is anything that can live in a Container.
type Node interface {
	Parent() *Container
	Visible() bool

	base() *Base
	draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32)
}

// Base carries the transform shared by every node type.
type Base struct {
	X, Y           float64
	PivotX, PivotY float64
	Rotation       float64

	alpha  float32
	hidden bool
	parent *Container
}

func newBase() Base {
	return Base{alpha: 1}
}

func (b *Base) base() *Base { return b }

func (b *Base) SetPosition(x, y float64) {
	b.X, b.Y = x, y
}

func (b *Base) Position() (float64, float64) {
	return b.X, b.Y
}

func (b *Base) SetPivot(x, y float64) {
	b.PivotX, b.PivotY = x, y
}

func (b *Base) SetVisible(v bool) {
	b.hidden = !v
}

func (b *Base) Visible() bool {
	return !b.hidden
}

// SetAlpha clamps a to [0, 1].
func (b *Base) SetAlpha(a float32) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	b.alpha = a
}

func (b *Base) Alpha() float32 {
	return b.alpha
}

func (b *Base) Parent() *Container {
	return b.parent
}

// localGeoM maps node-local coordinates into the parent's space.
func (b *Base) localGeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-b.PivotX, -b.PivotY)
	g.Rotate(b.Rotation)
	g.Translate(b.X, b.Y)
	return g
}

// worldGeoM composes the local transform with the parent's.
func (b *Base) worldGeoM(parent ebiten.GeoM) ebiten.GeoM {
	g := b.localGeoM()
	g.Concat(parent)
	return g
}
