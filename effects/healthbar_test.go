package effects

import "testing"

func TestHealthBarRatio(t *testing.T) {
	tests := []struct {
		hp, max int
		want    float64
	}{
		{100, 100, 1},
		{0, 100, 0},
		{25, 100, 0.25},
		{0, 0, 0},
		{150, 100, 1},
		{-5, 100, 0},
	}

	h := NewHealthBar()
	for _, tt := range tests {
		h.SetHPs(tt.hp, tt.max)
		if got := h.Ratio(); got != tt.want {
			t.Errorf("Ratio() with %d/%d = %v, want %v", tt.hp, tt.max, got, tt.want)
		}
		if got := h.HPs(); got != [2]int{tt.hp, tt.max} {
			t.Errorf("HPs() = %v, want [%d %d]", got, tt.hp, tt.max)
		}
	}
}
