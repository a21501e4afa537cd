// Package history keeps a bounded, time-windowed trail of curve snapshots.
package history

import (
	"iter"
	"math"

	"github.com/olivier-w/ribbon/internal/bezier"
)

// Snapshotter copies its current control point positions into dst[:0].
type Snapshotter interface {
	Snapshot(dst bezier.Curve) bezier.Curve
}

// Buffer is a circular FIFO of frozen curves, oldest first. Insertion
// happens at a fixed cadence, and eviction drops the oldest entries once the
// buffer holds more than the configured maximum. Storage of evicted
// snapshots is reused by later insertions.
//
// It is only mutated from the update step; the read methods never change it.
type Buffer struct {
	buf      []bezier.Curve
	start    int // index of the oldest entry
	n        int // current fill level
	last     float64
	inserted bool
}

// MaybeInsert stores a snapshot of live when nothing has been inserted yet
// or at least interval milliseconds passed since the previous insertion.
// A non-positive interval disables insertion. It reports whether a snapshot
// was taken.
func (b *Buffer) MaybeInsert(now, interval float64, live Snapshotter) bool {
	if interval <= 0 {
		return false
	}
	if b.inserted && now-b.last < interval {
		return false
	}

	if b.n == len(b.buf) {
		b.grow()
	}
	slot := (b.start + b.n) % len(b.buf)
	b.buf[slot] = live.Snapshot(b.buf[slot])
	b.n++
	b.last = now
	b.inserted = true
	return true
}

func (b *Buffer) grow() {
	next := make([]bezier.Curve, max(4, 2*len(b.buf)))
	for i := range b.n {
		next[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	b.buf = next
	b.start = 0
}

// EvictOverflow drops the oldest entries until at most maxCount remain.
func (b *Buffer) EvictOverflow(maxCount int) int {
	maxCount = max(maxCount, 0)
	evicted := 0
	for b.n > maxCount {
		b.start = (b.start + 1) % len(b.buf)
		b.n--
		evicted++
	}
	return evicted
}

// SlideFraction returns how far, in [0,1), the buffer has progressed toward
// its next insertion. It is 0 before the first insertion or when insertion
// is disabled.
func (b *Buffer) SlideFraction(now, interval float64) float64 {
	if interval <= 0 || !b.inserted {
		return 0
	}
	f := (now - b.last) / interval
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f >= 1:
		return math.Nextafter(1, 0)
	}
	return f
}

// Len returns the number of stored snapshots.
func (b *Buffer) Len() int { return b.n }

// LastInsert returns the time of the most recent insertion.
func (b *Buffer) LastInsert() (float64, bool) { return b.last, b.inserted }

// At returns the i-th snapshot, 0 being the oldest. The returned curve is
// only valid until the next insertion.
func (b *Buffer) At(i int) bezier.Curve {
	if i < 0 || i >= b.n {
		return nil
	}
	return b.buf[(b.start+i)%len(b.buf)]
}

// All yields the stored snapshots oldest first.
func (b *Buffer) All() iter.Seq2[int, bezier.Curve] {
	return func(yield func(int, bezier.Curve) bool) {
		for i := range b.n {
			if !yield(i, b.buf[(b.start+i)%len(b.buf)]) {
				return
			}
		}
	}
}

// Reset empties the buffer and forgets the last insertion time.
func (b *Buffer) Reset() {
	b.start = 0
	b.n = 0
	b.last = 0
	b.inserted = false
}
