package scenes

import (
	"testing"
	"time"

	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/automoto/skirmish/shared/messages"
	"github.com/automoto/skirmish/shared/netcomponents"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time { return c.t }

type scriptedFeed struct {
	snaps []*messages.ShipSnapshot
}

func (f *scriptedFeed) LatestSnapshot() *messages.ShipSnapshot {
	if len(f.snaps) == 0 {
		return nil
	}
	snap := f.snaps[0]
	f.snaps = f.snaps[1:]
	return snap
}

func (f *scriptedFeed) Status() string { return "Scripted" }

func ship(id string, x float64) netcomponents.ShipStateData {
	return netcomponents.ShipStateData{ID: id, Position: gamemath.Vec2{X: x, Y: 0}, HP: 10, MaxHP: 10}
}

func TestArenaSceneAppliesSnapshots(t *testing.T) {
	feed := &scriptedFeed{snaps: []*messages.ShipSnapshot{
		{Tick: 1, Ships: []netcomponents.ShipStateData{ship("a", 0), ship("b", 1000)}},
		nil,
		{Tick: 2, Ships: []netcomponents.ShipStateData{ship("b", 2000)}},
	}}
	as := NewArenaScene(feed, session.NewState())

	tests := []struct {
		name string
		want []string
	}{
		{"first snapshot spawns", []string{"a", "b"}},
		{"no snapshot keeps fleet", []string{"a", "b"}},
		{"missing ship despawns", []string{"b"}},
	}
	for _, tt := range tests {
		as.Update()
		if got := as.Fleet().Len(); got != len(tt.want) {
			t.Fatalf("%s: Len() = %d, want %d", tt.name, got, len(tt.want))
		}
		for _, id := range tt.want {
			if _, ok := as.Fleet().Ship(id); !ok {
				t.Errorf("%s: ship %s missing", tt.name, id)
			}
		}
	}
}

func TestArenaSceneSkipsInvalidShips(t *testing.T) {
	bad := ship("bad", 0)
	bad.HP = 11
	feed := &scriptedFeed{snaps: []*messages.ShipSnapshot{
		{Tick: 1, Ships: []netcomponents.ShipStateData{ship("a", 0), bad}},
	}}
	as := NewArenaScene(feed, session.NewState())
	as.Update()

	if got := as.Fleet().Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestDemoFeed(t *testing.T) {
	clock := &stepClock{t: time.Unix(1700000000, 0)}
	sess := session.NewState()
	feed := NewDemoFeed(sess, clock.Now)

	if sess.LocalClientID() != "demo-0" {
		t.Errorf("LocalClientID() = %q, want demo-0", sess.LocalClientID())
	}
	if name, ok := sess.DisplayName("demo-1"); !ok || name != "Ripley" {
		t.Errorf("DisplayName(demo-1) = %q, %v", name, ok)
	}
	if sess.KilledBy() != "demo-2" {
		t.Errorf("KilledBy() = %q, want demo-2", sess.KilledBy())
	}

	snap := feed.LatestSnapshot()
	if snap == nil || len(snap.Ships) != demoShipCount {
		t.Fatalf("first snapshot = %+v", snap)
	}
	for _, s := range snap.Ships {
		if err := s.Validate(); err != nil {
			t.Errorf("ship %s invalid: %v", s.ID, err)
		}
	}

	clock.t = clock.t.Add(10 * time.Millisecond)
	if again := feed.LatestSnapshot(); again != nil {
		t.Errorf("snapshot before the next tick: %+v", again)
	}

	clock.t = clock.t.Add(time.Second / demoTickRate)
	next := feed.LatestSnapshot()
	if next == nil || next.Tick != 2 {
		t.Fatalf("second snapshot = %+v", next)
	}
	if next.Ships[0].Position == snap.Ships[0].Position {
		t.Error("demo ship did not move")
	}
}

func TestDemoShipVelocityMatchesMotion(t *testing.T) {
	s := demoShip{id: "x", radius: 200, speed: 0.5}
	const dt = 1e-4

	a := s.state(1, 0)
	b := s.state(1+dt, 0)
	moved := b.Position.Sub(a.Position).Scale(1 / dt)

	if d := moved.Sub(a.Velocity).Length(); d > 1 {
		t.Errorf("velocity %+v disagrees with motion %+v", a.Velocity, moved)
	}
}
