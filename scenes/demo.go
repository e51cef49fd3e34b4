package scenes

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/shared/gamemath"
	"github.com/automoto/skirmish/shared/messages"
	"github.com/automoto/skirmish/shared/netcomponents"
)

const (
	demoShipCount = 5
	demoTickRate  = 20
	demoCentre    = 2000.0 // world units
)

var demoNames = []string{"You", "Ripley", "Hicks", "Bishop", "Vasquez"}

type demoShip struct {
	id     string
	radius float64 // world units
	speed  float64 // radians per second
	phase  float64
}

// DemoFeed fakes a server: ships circle the arena centre and a snapshot is
// produced demoTickRate times a second. The first ship is the local one and
// the third is recorded as its killer.
type DemoFeed struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	tick  uint32
	ships []demoShip
}

func NewDemoFeed(sess *session.State, now func() time.Time) *DemoFeed {
	if now == nil {
		now = time.Now
	}
	d := &DemoFeed{now: now, start: now()}

	names := make(map[string]string, demoShipCount)
	for i := 0; i < demoShipCount; i++ {
		id := fmt.Sprintf("demo-%d", i)
		names[id] = demoNames[i%len(demoNames)]
		d.ships = append(d.ships, demoShip{
			id:     id,
			radius: 150 + 60*float64(i),
			speed:  0.6 - 0.08*float64(i),
			phase:  float64(i) * 2 * math.Pi / demoShipCount,
		})
	}

	sess.SetRoster(names)
	sess.SetLocalClientID(d.ships[0].id)
	sess.SetKilledBy(d.ships[2].id)
	return d
}

// LatestSnapshot returns a snapshot when a server tick has elapsed since the
// previous one, nil otherwise.
func (d *DemoFeed) LatestSnapshot() *messages.ShipSnapshot {
	t := d.now()
	if d.tick > 0 && t.Sub(d.last) < time.Second/demoTickRate {
		return nil
	}
	d.last = t
	d.tick++

	elapsed := t.Sub(d.start).Seconds()
	snap := &messages.ShipSnapshot{Tick: d.tick}
	for i, s := range d.ships {
		snap.Ships = append(snap.Ships, s.state(elapsed, i))
	}
	return snap
}

func (d *DemoFeed) Status() string {
	return "Offline demo"
}

func (s demoShip) state(elapsed float64, i int) netcomponents.ShipStateData {
	angle := s.phase + s.speed*elapsed
	sin, cos := math.Sincos(angle)

	pos := gamemath.Vec2{X: demoCentre + s.radius*cos, Y: demoCentre + s.radius*sin}
	vel := gamemath.Vec2{X: -s.radius * s.speed * sin, Y: s.radius * s.speed * cos}

	// hp drains and refills over a ten second cycle, offset per ship
	const maxHP = 100
	hp := maxHP - (int(elapsed)+2*i)%10*10

	return netcomponents.ShipStateData{
		ID:          s.id,
		Position:    pos.Scale(gamemath.FixedPointScale),
		Velocity:    vel.Scale(gamemath.FixedPointScale),
		Facing:      angle + math.Pi/2,
		InputThrust: (int(elapsed)+i)%3 != 0,
		HP:          hp,
		MaxHP:       maxHP,
	}
}
