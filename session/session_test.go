package session

import (
	"sync"
	"testing"
)

func TestStateDirectory(t *testing.T) {
	s := NewState()

	if _, ok := s.DisplayName("p1"); ok {
		t.Fatal("empty directory should miss")
	}

	s.SetName("p1", "Ripley")
	if name, ok := s.DisplayName("p1"); !ok || name != "Ripley" {
		t.Errorf("DisplayName(p1) = %q, %v", name, ok)
	}

	roster := map[string]string{"p2": "Hicks"}
	s.SetRoster(roster)
	roster["p3"] = "Vasquez"

	if _, ok := s.DisplayName("p1"); ok {
		t.Error("SetRoster should replace the directory")
	}
	if _, ok := s.DisplayName("p3"); ok {
		t.Error("SetRoster must copy its input")
	}
}

func TestStateKilledBy(t *testing.T) {
	s := NewState()
	s.SetLocalClientID("me")
	s.SetKilledBy("p7")

	if s.LocalClientID() != "me" || s.KilledBy() != "p7" {
		t.Fatalf("got local=%q killedBy=%q", s.LocalClientID(), s.KilledBy())
	}
	s.ClearKilledBy()
	if s.KilledBy() != "" {
		t.Errorf("KilledBy() = %q after clear", s.KilledBy())
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetName("p1", "Bishop")
			s.SetKilledBy("p1")
		}()
		go func() {
			defer wg.Done()
			s.DisplayName("p1")
			s.KilledBy()
		}()
	}
	wg.Wait()
}

var _ Reader = (*State)(nil)
