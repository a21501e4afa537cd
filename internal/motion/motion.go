// Package motion moves Bézier control points toward randomly chosen targets
// at a bounded rate.
package motion

import (
	"math/rand"

	"github.com/olivier-w/ribbon/internal/bezier"
)

// Mode restricts how a control point may move.
type Mode uint8

const (
	Free     Mode = iota // roams the unit square
	Vertical             // keeps its x, picks new y targets
	Pinned               // never moves
)

// Next cycles to the next mode.
func (m Mode) Next() Mode {
	switch m {
	case Free:
		return Vertical
	case Vertical:
		return Pinned
	default:
		return Free
	}
}

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case Pinned:
		return "pinned"
	default:
		return "free"
	}
}

// ControlPoint is a curve control point together with its motion state.
// A point is either seeking Target along Dir or, once it arrives, retargeted
// within the same step.
type ControlPoint struct {
	bezier.Point
	Target bezier.Point
	Dir    bezier.Vec2 // unit vector toward Target
	Mode   Mode
}

// Mover holds the parameters shared by every moving point.
type Mover struct {
	Speed     float64 // curve-space units per millisecond
	Spread    float64 // fraction of the width a point's x target may wander over
	ClampLow  float64 // lowest y target
	ClampHigh float64 // highest y target
	Rand      *rand.Rand
}

func (m Mover) float() float64 {
	if m.Rand == nil {
		return rand.Float64()
	}
	return m.Rand.Float64()
}

// Retarget picks a new target for the point in slot i of a degree-n curve.
// The x target is biased toward the slot's share of the width so interior
// points keep their left-to-right order.
func (m Mover) Retarget(c *ControlPoint, slot, n int) {
	if c.Mode == Pinned {
		c.Target = c.Point
		c.Dir = bezier.Vec2{}
		return
	}

	x := c.X
	if c.Mode == Free {
		var frac float64
		if n > 0 {
			frac = float64(slot) / float64(n)
		}
		x = m.float()*m.Spread + frac*(1-m.Spread)
	}
	y := m.ClampLow + m.float()*(m.ClampHigh-m.ClampLow)

	c.Target = bezier.Pt(x, y)
	c.Dir = c.Target.Sub(c.Point).Normalize()
}

// Step advances the point by elapsed milliseconds. A point whose remaining
// distance fits in this step's budget lands exactly on its target and is
// retargeted; a step never carries a point past its target, however large
// elapsed is.
func (m Mover) Step(c *ControlPoint, slot, n int, elapsed float64) {
	if elapsed <= 0 || c.Mode == Pinned {
		return
	}
	budget := m.Speed * elapsed
	if budget <= 0 {
		return
	}

	remaining := c.Target.Sub(c.Point)
	if remaining.Hypot2() <= budget*budget {
		c.Point = c.Target
		m.Retarget(c, slot, n)
		return
	}

	if c.Dir == (bezier.Vec2{}) {
		c.Dir = remaining.Normalize()
	}
	// A stale direction can reach the target's projection before the
	// target itself.
	if c.Dir.Dot(remaining) <= budget {
		c.Point = c.Target
		m.Retarget(c, slot, n)
		return
	}
	c.Point = c.Point.Add(c.Dir.Mul(budget))
}
