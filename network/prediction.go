package network

import "github.com/automoto/skirmish/shared/gamemath"

const correctionLogSize = 64

// Correction records where the reckoner thought a ship was when an
// authoritative position arrived.
type Correction struct {
	Seq           uint32
	Predicted     gamemath.Vec2
	Authoritative gamemath.Vec2
}

// Drift is the distance, in fixed-point units, between the predicted and
// authoritative positions.
func (c Correction) Drift() float64 {
	return c.Predicted.Sub(c.Authoritative).Length()
}

// CorrectionLog is a ring buffer of the most recent corrections.
type CorrectionLog struct {
	history [correctionLogSize]Correction
	nextSeq uint32
}

// Store appends a correction and returns its sequence number.
func (cl *CorrectionLog) Store(predicted, authoritative gamemath.Vec2) uint32 {
	seq := cl.nextSeq
	cl.history[seq%correctionLogSize] = Correction{
		Seq:           seq,
		Predicted:     predicted,
		Authoritative: authoritative,
	}
	cl.nextSeq++
	return seq
}

// Get retrieves a stored correction. Returns false if the slot has been
// overwritten or was never written.
func (cl *CorrectionLog) Get(seq uint32) (Correction, bool) {
	if seq >= cl.nextSeq {
		return Correction{}, false
	}
	record := cl.history[seq%correctionLogSize]
	if record.Seq != seq {
		return Correction{}, false
	}
	return record, true
}

// NextSeq returns the sequence number the next Store will use.
func (cl *CorrectionLog) NextSeq() uint32 {
	return cl.nextSeq
}

// Len returns how many corrections are currently retained.
func (cl *CorrectionLog) Len() int {
	if cl.nextSeq < correctionLogSize {
		return int(cl.nextSeq)
	}
	return correctionLogSize
}

// MeanDrift averages the drift of every retained correction.
func (cl *CorrectionLog) MeanDrift() float64 {
	n := cl.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for seq := cl.nextSeq - uint32(n); seq < cl.nextSeq; seq++ {
		if record, ok := cl.Get(seq); ok {
			sum += record.Drift()
		}
	}
	return sum / float64(n)
}
