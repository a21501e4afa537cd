package anim

import (
	"github.com/olivier-w/ribbon/internal/bezier"
	"github.com/olivier-w/ribbon/internal/history"
	"github.com/olivier-w/ribbon/internal/motion"
)

// sliding animates a single live curve. Every spawn interval a snapshot of
// it joins the history, and the history is drawn stacked above the live
// curve, each entry one slide step higher than the next newer one.
type sliding struct {
	live    motion.Curve
	history history.Buffer
}

func (s *sliding) init(e *Engine, c Constants) {
	s.live = motion.Seed(e.degree, c.Margin, c.Endpoints, e.mover(c))
	s.history.Reset()
}

func (s *sliding) update(e *Engine, c Constants, now, elapsed float64) {
	m := e.mover(c)
	s.live.SetEndpoints(c.Endpoints, m)
	s.live.Step(m, elapsed)

	if c.SpawnInterval <= 0 {
		// History is off; drop whatever was collected before.
		s.history.Reset()
		return
	}
	s.history.MaybeInsert(now, c.SpawnInterval, s.live)
	s.history.EvictOverflow(c.MaxCurves)
}

func (s *sliding) curves() int { return s.history.Len() + 1 }

func (s *sliding) draw(e *Engine, c Constants, surf Surface, now float64) {
	w, h := surf.Size()
	surf.Clear()
	surf.SetLineWidth(c.LineWidth)

	pal := e.Palette()
	frac := s.history.SlideFraction(now, c.SpawnInterval)
	span := float64(max(c.MaxCurves, 1))
	count := s.history.Len()

	var pts []bezier.Point
	for i, curve := range s.history.All() {
		// Slots above the baseline; 0 is the newest snapshot at the moment
		// it was taken.
		k := float64(count-1-i) + frac
		// The entry next in line for eviction fades out over its last slot.
		alpha := clampf(float64(c.MaxCurves)-k, 0, 1)
		if alpha <= 0 {
			continue
		}
		surf.SetStrokeColor(withAlpha(pal.At(k/span), alpha))
		xf, yf := stack(c, w, h, k*c.Slide)
		pts = e.binom.Polyline(pts, curve, c.Segments, xf, yf)
		surf.Stroke(pts)
	}

	surf.SetStrokeColor(withAlpha(pal.At(0), 1))
	xf, yf := stack(c, w, h, 0)
	pts = e.binom.Polyline(pts, s.live.Snapshot(nil), c.Segments, xf, yf)
	surf.Stroke(pts)
}
