package motion

import "github.com/olivier-w/ribbon/internal/bezier"

// Curve is an animated Bézier curve. Its length is fixed at n+1 when seeded.
type Curve []ControlPoint

// Seed returns a degree-n curve. The end points sit margin outside the
// left and right edges at mid height and move according to endpoints;
// interior points start at a random spot for their slot and already have
// a target.
func Seed(n int, margin float64, endpoints Mode, m Mover) Curve {
	n = max(n, 1)
	c := make(Curve, n+1)
	for i := range c {
		p := &c[i]
		switch i {
		case 0:
			p.Point = bezier.Pt(-margin, 0.5)
			p.Mode = endpoints
		case n:
			p.Point = bezier.Pt(1+margin, 0.5)
			p.Mode = endpoints
		default:
			p.Point = bezier.Pt(float64(i)/float64(n), 0.5)
			m.Retarget(p, i, n)
			p.Point = p.Target
		}
		m.Retarget(p, i, n)
	}
	return c
}

// Degree returns n for a curve of n+1 points.
func (c Curve) Degree() int { return len(c) - 1 }

// Step moves every point of the curve by elapsed milliseconds.
func (c Curve) Step(m Mover, elapsed float64) {
	n := c.Degree()
	for i := range c {
		m.Step(&c[i], i, n, elapsed)
	}
}

// SetEndpoints changes the mode of the first and last point.
func (c Curve) SetEndpoints(mode Mode, m Mover) {
	if len(c) == 0 {
		return
	}
	n := c.Degree()
	for _, i := range []int{0, n} {
		if c[i].Mode != mode {
			c[i].Mode = mode
			m.Retarget(&c[i], i, n)
		}
	}
}

// Snapshot copies the current positions into dst[:0] and returns it.
func (c Curve) Snapshot(dst bezier.Curve) bezier.Curve {
	dst = dst[:0]
	for _, p := range c {
		dst = append(dst, p.Point)
	}
	return dst
}
