package anim

import (
	"math"

	"github.com/olivier-w/ribbon/internal/bezier"
	"github.com/olivier-w/ribbon/internal/motion"
)

// twisting lays MaxCurves curves out in slots. Only the pivot slots move on
// their own; every slot between two pivots is rebuilt on each update by
// interpolating the pivots' control points, which makes the stack appear to
// twist.
type twisting struct {
	pivots []motion.Curve
	layout []int // slot of each pivot
	slots  []bezier.Curve
}

// pivotCount returns how many pivots m slots get when p are requested.
func pivotCount(m, p int) int {
	switch {
	case m <= 0:
		return 0
	case m == 1:
		return 1
	}
	return max(2, min(p, m))
}

// PivotSlots spreads p pivots evenly over m slots. The first pivot is at
// slot 0 and the last at slot m-1.
func PivotSlots(m, p int) []int {
	p = pivotCount(m, p)
	if p == 0 {
		return nil
	}
	if p == 1 {
		return []int{0}
	}
	out := make([]int, p)
	for j := range out {
		out[j] = int(math.Round(float64(j) * float64(m-1) / float64(p-1)))
	}
	return out
}

func (s *twisting) init(e *Engine, c Constants) {
	s.pivots = nil
	s.layout = nil
	s.slots = nil
	s.resize(e, c)
	s.interpolate()
}

// resize follows changes to MaxCurves and Pivots. Surviving pivots keep
// their motion; new ones are seeded.
func (s *twisting) resize(e *Engine, c Constants) {
	p := pivotCount(c.MaxCurves, c.Pivots)
	if len(s.pivots) > p {
		s.pivots = s.pivots[:p]
	}
	for len(s.pivots) < p {
		s.pivots = append(s.pivots, motion.Seed(e.degree, c.Margin, c.Endpoints, e.mover(c)))
	}
	if len(s.layout) != p || (p > 0 && s.layout[p-1] != c.MaxCurves-1) {
		s.layout = PivotSlots(c.MaxCurves, p)
	}

	if len(s.slots) > c.MaxCurves {
		s.slots = s.slots[:c.MaxCurves]
	}
	for len(s.slots) < c.MaxCurves {
		s.slots = append(s.slots, make(bezier.Curve, e.degree+1))
	}
}

func (s *twisting) update(e *Engine, c Constants, now, elapsed float64) {
	s.resize(e, c)
	m := e.mover(c)
	for _, p := range s.pivots {
		p.SetEndpoints(c.Endpoints, m)
		p.Step(m, elapsed)
	}
	s.interpolate()
}

// interpolate rebuilds every slot from the pivots around it.
func (s *twisting) interpolate() {
	if len(s.layout) == 1 && len(s.slots) > 0 {
		s.slots[0] = s.pivots[0].Snapshot(s.slots[0])
		return
	}
	for j := 0; j+1 < len(s.layout); j++ {
		a, b := s.layout[j], s.layout[j+1]
		pa, pb := s.pivots[j], s.pivots[j+1]
		for slot := a; slot <= b; slot++ {
			t := float64(slot-a) / float64(b-a)
			dst := s.slots[slot][:0]
			for i := range pa {
				dst = append(dst, pa[i].Lerp(pb[i].Point, t))
			}
			s.slots[slot] = dst
		}
	}
}

func (s *twisting) curves() int { return len(s.slots) }

func (s *twisting) draw(e *Engine, c Constants, surf Surface, now float64) {
	w, h := surf.Size()
	surf.Clear()
	surf.SetLineWidth(c.LineWidth)

	pal := e.Palette()
	last := float64(max(len(s.slots)-1, 1))

	var pts []bezier.Point
	for slot, curve := range s.slots {
		pos := float64(slot) / last
		surf.SetStrokeColor(withAlpha(pal.Nearest(pos), 1))
		xf, yf := stack(c, w, h, float64(slot)*c.Slide)
		pts = e.binom.Polyline(pts, curve, c.Segments, xf, yf)
		surf.Stroke(pts)
	}
}
