package ship

import (
	"testing"

	"github.com/automoto/skirmish/scene"
	"github.com/automoto/skirmish/shared/gamemath"
)

func TestOutOfView(t *testing.T) {
	vp := gamemath.Viewport{Width: 800, Height: 600}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 400, 300, false},
		{"exactly radius from left", 40, 300, false},
		{"left breached", 39, 300, true},
		{"top breached", 400, 39.9, true},
		{"right breached", 760.5, 300, true},
		{"exactly radius from bottom", 400, 560, false},
		{"bottom breached", 400, 561, true},
		{"off screen left", -5, 300, true},
		{"off screen right", 900, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutOfView(tt.x, tt.y, vp); got != tt.want {
				t.Errorf("OutOfView(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOverlayRect(t *testing.T) {
	got := OverlayRect(410, 310)
	want := scene.Rect{X: 370, Y: 270, W: 80, H: 80}
	if got != want {
		t.Errorf("OverlayRect = %+v, want %+v", got, want)
	}
}
