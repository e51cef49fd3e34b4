package network

import (
	"time"

	"github.com/automoto/skirmish/shared/gamemath"
)

// Reckoner dead-reckons a remote ship between authoritative updates. Each
// Advance integrates the last known velocity over the wall time elapsed since
// the previous Advance or Correct.
type Reckoner struct {
	position gamemath.Vec2
	velocity gamemath.Vec2
	last     time.Time
	now      func() time.Time

	Log CorrectionLog
}

// NewReckoner seeds a reckoner with a baseline. A nil now uses time.Now.
func NewReckoner(position, velocity gamemath.Vec2, now func() time.Time) *Reckoner {
	if now == nil {
		now = time.Now
	}
	return &Reckoner{
		position: position,
		velocity: velocity,
		last:     now(),
		now:      now,
	}
}

// Correct replaces the baseline with an authoritative value, discarding any
// drift accumulated since the previous correction.
func (r *Reckoner) Correct(position, velocity gamemath.Vec2) {
	r.Log.Store(r.position, position)
	r.position = position
	r.velocity = velocity
	r.last = r.now()
}

// Advance extrapolates the position up to the current time.
func (r *Reckoner) Advance() {
	t := r.now()
	if dt := t.Sub(r.last).Seconds(); dt > 0 {
		r.position = r.position.Add(r.velocity.Scale(dt))
	}
	r.last = t
}

// Position returns the current predicted position in fixed-point units.
func (r *Reckoner) Position() gamemath.Vec2 {
	return r.position
}

// Velocity returns the last authoritative velocity.
func (r *Reckoner) Velocity() gamemath.Vec2 {
	return r.velocity
}

// LastDrift returns the drift discarded by the most recent correction.
func (r *Reckoner) LastDrift() float64 {
	seq := r.Log.NextSeq()
	if seq == 0 {
		return 0
	}
	record, _ := r.Log.Get(seq - 1)
	return record.Drift()
}
