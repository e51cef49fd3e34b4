package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestContainerReparent(t *testing.T) {
	root := NewContainer()
	a := NewContainer()
	b := NewContainer()
	s := NewSprite(nil)

	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(s)
	b.AddChild(s)

	if a.Contains(s) {
		t.Error("sprite should have been detached from its previous parent")
	}
	if s.Parent() != b {
		t.Error("sprite parent should be b")
	}
	if !root.RemoveChild(a) {
		t.Error("RemoveChild(a) = false")
	}
	if root.RemoveChild(a) {
		t.Error("second RemoveChild(a) should report false")
	}
	if a.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if len(root.Children()) != 1 || root.Children()[0] != Node(b) {
		t.Errorf("root children = %v", root.Children())
	}
}

func TestPivotRotation(t *testing.T) {
	c := NewContainer()
	c.SetPivot(10, 5)
	c.SetPosition(100, 100)

	g := c.worldGeoM(ebiten.GeoM{})
	if x, y := g.Apply(10, 5); x != 100 || y != 100 {
		t.Errorf("pivot maps to (%v, %v), want (100, 100)", x, y)
	}

	c.Rotation = math.Pi / 2
	g = c.worldGeoM(ebiten.GeoM{})
	x, y := g.Apply(10, 5)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("rotation should keep the pivot fixed, got (%v, %v)", x, y)
	}
	x, y = g.Apply(20, 5)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-110) > 1e-9 {
		t.Errorf("point right of pivot rotated to (%v, %v), want (100, 110)", x, y)
	}
}

func TestNestedTransform(t *testing.T) {
	parent := NewContainer()
	parent.SetPosition(50, 50)
	child := NewContainer()
	child.SetPosition(-27, 7)
	parent.AddChild(child)

	g := child.worldGeoM(parent.worldGeoM(ebiten.GeoM{}))
	if x, y := g.Apply(0, 0); x != 23 || y != 57 {
		t.Errorf("child origin at (%v, %v), want (23, 57)", x, y)
	}
}

func TestAnimatedSpritePlayStop(t *testing.T) {
	a := NewAnimatedSprite(make([]*ebiten.Image, 4), 1)

	a.Tick()
	if a.CurrentFrame() != 0 {
		t.Errorf("stopped animation advanced to frame %d", a.CurrentFrame())
	}

	a.Play()
	a.Tick()
	a.Tick()
	if !a.Playing() || a.CurrentFrame() != 2 {
		t.Errorf("playing=%v frame=%d, want playing at frame 2", a.Playing(), a.CurrentFrame())
	}

	a.Stop()
	a.Tick()
	if a.CurrentFrame() != 2 {
		t.Errorf("frame moved after Stop: %d", a.CurrentFrame())
	}
}

func TestAlphaClamp(t *testing.T) {
	s := NewSprite(nil)
	s.SetAlpha(3)
	if s.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", s.Alpha())
	}
	s.SetAlpha(-1)
	if s.Alpha() != 0 {
		t.Errorf("Alpha() = %v, want 0", s.Alpha())
	}
}

type recordingFilter struct {
	areas []Rect
}

func (f *recordingFilter) Apply(_ *ebiten.Image, area Rect) {
	f.areas = append(f.areas, area)
}

func TestGraphicsFilterSlot(t *testing.T) {
	root := NewContainer()
	g := NewGraphics()
	root.AddChild(g)
	f := &recordingFilter{}

	g.SetFilters(f, &recordingFilter{})
	if len(g.Filters()) != 1 || g.Filters()[0] != Filter(f) {
		t.Fatalf("Filters() = %v, want only the first filter", g.Filters())
	}

	g.FilterArea = Rect{X: 10, Y: 20, W: 80, H: 80}
	screen := ebiten.NewImage(16, 16)
	root.Draw(screen)
	if len(f.areas) != 1 || f.areas[0] != g.FilterArea {
		t.Errorf("filter applied over %v, want one call with %v", f.areas, g.FilterArea)
	}

	g.SetFilters()
	if g.Filters() != nil {
		t.Error("empty SetFilters should clear the slot")
	}
	root.Draw(screen)
	if len(f.areas) != 1 {
		t.Error("cleared filter was still applied")
	}

	g.SetVisible(false)
	g.SetFilters(f)
	root.Draw(screen)
	if len(f.areas) != 1 {
		t.Error("hidden graphics applied its filter")
	}
}

func TestTextState(t *testing.T) {
	txt := NewText("", nil, color.White)
	txt.SetText("Ripley")
	txt.SetColor(color.RGBA{R: 255, A: 255})
	if txt.Text() != "Ripley" {
		t.Errorf("Text() = %q", txt.Text())
	}
	if txt.Color() != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Color() = %v", txt.Color())
	}
}
