package scene

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Container groups child nodes under one transform.
type Container struct {
	Base
	children []Node
}

func NewContainer() *Container {
	return &Container{Base: newBase()}
}

// AddChild appends n, detaching it from any previous parent first.
func (c *Container) AddChild(n Node) {
	if prev := n.Parent(); prev != nil {
		prev.RemoveChild(n)
	}
	n.base().parent = c
	c.children = append(c.children, n)
}

// RemoveChild detaches n. It reports false if n was not a child of c.
func (c *Container) RemoveChild(n Node) bool {
	i := slices.Index(c.children, n)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	n.base().parent = nil
	return true
}

// Children returns the children in draw order.
func (c *Container) Children() []Node {
	return c.children
}

func (c *Container) Contains(n Node) bool {
	return slices.Contains(c.children, n)
}

// Draw renders c and its subtree onto dst. It is meant to be called on the
// scene root.
func (c *Container) Draw(dst *ebiten.Image) {
	c.draw(dst, ebiten.GeoM{}, 1)
}

func (c *Container) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float32) {
	if !c.Visible() {
		return
	}
	g := c.worldGeoM(parent)
	alpha *= c.alpha
	for _, child := range c.children {
		child.draw(dst, g, alpha)
	}
}
