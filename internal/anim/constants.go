package anim

import (
	"math"

	"github.com/olivier-w/ribbon/internal/motion"
)

// Constants are the run-time tunable parameters of the animation. The
// engine reads a sanitized copy every frame, so a new value takes effect on
// the next update. Writers replace the whole record through
// [Engine.SetConstants].
type Constants struct {
	SpawnInterval float64 // ms between history snapshots; 0 disables history
	MaxCurves     int     // history length (Sliding) or slot count (Twisting)
	Segments      int     // polyline segments per curve
	Speed         float64 // control point speed in curve units per ms
	Spread        float64 // width of a point's x target window
	ClampLow      float64 // y target range
	ClampHigh     float64
	Margin        float64 // how far the end points sit outside the edges
	Endpoints     motion.Mode
	Compression   float64 // share of the surface height one curve spans
	Slide         float64 // vertical offset per stacked curve, share of height
	Baseline      float64 // vertical centre of the newest curve, 0 is the top
	LineWidth     float64
	Pivots        int // independently animated curves (Twisting)
}

// DefaultConstants returns the values the program starts with.
func DefaultConstants() Constants {
	return Constants{
		SpawnInterval: 120,
		MaxCurves:     40,
		Segments:      64,
		Speed:         0.00012,
		Spread:        0.35,
		ClampLow:      0.1,
		ClampHigh:     0.9,
		Margin:        0.1,
		Endpoints:     motion.Pinned,
		Compression:   0.35,
		Slide:         0.012,
		Baseline:      0.72,
		LineWidth:     1.5,
		Pivots:        6,
	}
}

const (
	maxCurvesLimit = 1000
	segmentsLimit  = 4096
)

func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sanitized returns a copy of c that the engine can run with whatever the
// panel or command line put in it.
func (c Constants) Sanitized() Constants {
	d := DefaultConstants()

	c.SpawnInterval = math.Max(0, finite(c.SpawnInterval, d.SpawnInterval))
	c.MaxCurves = max(0, min(c.MaxCurves, maxCurvesLimit))
	c.Segments = max(1, min(c.Segments, segmentsLimit))
	c.Speed = math.Max(0, finite(c.Speed, d.Speed))
	c.Spread = clampf(finite(c.Spread, d.Spread), 0, 1)
	c.ClampLow = clampf(finite(c.ClampLow, d.ClampLow), 0, 1)
	c.ClampHigh = clampf(finite(c.ClampHigh, d.ClampHigh), 0, 1)
	if c.ClampLow > c.ClampHigh {
		c.ClampLow, c.ClampHigh = c.ClampHigh, c.ClampLow
	}
	c.Margin = clampf(finite(c.Margin, d.Margin), 0, 1)
	if c.Endpoints > motion.Pinned {
		c.Endpoints = d.Endpoints
	}
	c.Compression = math.Max(0, finite(c.Compression, d.Compression))
	c.Slide = finite(c.Slide, d.Slide)
	c.Baseline = finite(c.Baseline, d.Baseline)
	c.LineWidth = clampf(finite(c.LineWidth, d.LineWidth), 0.1, 64)
	c.Pivots = max(1, c.Pivots)
	return c
}
