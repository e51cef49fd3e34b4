package netcomponents

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/skirmish/shared/gamemath"
)

func validShip() ShipStateData {
	return ShipStateData{
		ID:       "p1",
		Position: gamemath.Vec2{X: 1000, Y: 1000},
		HP:       100,
		MaxHP:    100,
	}
}

func TestShipStateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShipStateData)
		wantErr bool
	}{
		{"valid", func(*ShipStateData) {}, false},
		{"zero hp", func(s *ShipStateData) { s.HP = 0 }, false},
		{"zero max", func(s *ShipStateData) { s.HP, s.MaxHP = 0, 0 }, false},
		{"missing id", func(s *ShipStateData) { s.ID = "" }, true},
		{"hp above max", func(s *ShipStateData) { s.HP = 101 }, true},
		{"negative hp", func(s *ShipStateData) { s.HP = -1 }, true},
		{"negative max", func(s *ShipStateData) { s.HP, s.MaxHP = 0, -5 }, true},
		{"nan position", func(s *ShipStateData) { s.Position.X = math.NaN() }, true},
		{"inf velocity", func(s *ShipStateData) { s.Velocity.Y = math.Inf(1) }, true},
		{"nan facing", func(s *ShipStateData) { s.Facing = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShip()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Errorf("Validate() = %v, want ErrInvalidState", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
