package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/olivier-w/ribbon/internal/anim"
	"github.com/olivier-w/ribbon/internal/motion"
)

// row is one tunable value in the panel.
type row struct {
	label    string
	min, max float64
	step     float64
	get      func(e *anim.Engine) float64
	set      func(e *anim.Engine, v float64)
	format   func(v float64) string
}

// constant builds a row that edits a field of the engine constants. The whole
// record is replaced on every change.
func constant(label string, lo, hi, step float64, get func(c anim.Constants) float64, set func(c *anim.Constants, v float64), format string) row {
	return row{
		label: label,
		min:   lo,
		max:   hi,
		step:  step,
		get:   func(e *anim.Engine) float64 { return get(e.Constants()) },
		set: func(e *anim.Engine, v float64) {
			c := e.Constants()
			set(&c, v)
			e.SetConstants(c)
		},
		format: func(v float64) string { return fmt.Sprintf(format, v) },
	}
}

var rows = []row{
	{
		label:  "degree",
		min:    anim.MinDegree,
		max:    anim.MaxDegree,
		step:   1,
		get:    func(e *anim.Engine) float64 { return float64(e.Degree()) },
		set:    func(e *anim.Engine, v float64) { e.SetDegree(int(v)) },
		format: func(v float64) string { return fmt.Sprintf("%.0f", v) },
	},
	constant("interval", 0, 1000, 10,
		func(c anim.Constants) float64 { return c.SpawnInterval },
		func(c *anim.Constants, v float64) { c.SpawnInterval = v }, "%.0fms"),
	constant("curves", 0, 200, 1,
		func(c anim.Constants) float64 { return float64(c.MaxCurves) },
		func(c *anim.Constants, v float64) { c.MaxCurves = int(v) }, "%.0f"),
	constant("segments", 1, 256, 1,
		func(c anim.Constants) float64 { return float64(c.Segments) },
		func(c *anim.Constants, v float64) { c.Segments = int(v) }, "%.0f"),
	// Shown per second; stored per millisecond.
	{
		label: "speed",
		min:   0,
		max:   0.002,
		step:  0.00002,
		get:   func(e *anim.Engine) float64 { return e.Constants().Speed },
		set: func(e *anim.Engine, v float64) {
			c := e.Constants()
			c.Speed = v
			e.SetConstants(c)
		},
		format: func(v float64) string { return fmt.Sprintf("%.3f/s", v*1000) },
	},
	constant("spread", 0, 1, 0.05,
		func(c anim.Constants) float64 { return c.Spread },
		func(c *anim.Constants, v float64) { c.Spread = v }, "%.2f"),
	constant("clamp low", 0, 1, 0.05,
		func(c anim.Constants) float64 { return c.ClampLow },
		func(c *anim.Constants, v float64) { c.ClampLow = v }, "%.2f"),
	constant("clamp high", 0, 1, 0.05,
		func(c anim.Constants) float64 { return c.ClampHigh },
		func(c *anim.Constants, v float64) { c.ClampHigh = v }, "%.2f"),
	constant("compress", 0, 1, 0.05,
		func(c anim.Constants) float64 { return c.Compression },
		func(c *anim.Constants, v float64) { c.Compression = v }, "%.2f"),
	constant("slide", 0, 0.05, 0.002,
		func(c anim.Constants) float64 { return c.Slide },
		func(c *anim.Constants, v float64) { c.Slide = v }, "%.3f"),
	constant("baseline", 0, 1, 0.02,
		func(c anim.Constants) float64 { return c.Baseline },
		func(c *anim.Constants, v float64) { c.Baseline = v }, "%.2f"),
	constant("line width", 0.5, 8, 0.5,
		func(c anim.Constants) float64 { return c.LineWidth },
		func(c *anim.Constants, v float64) { c.LineWidth = v }, "%.1f"),
	constant("pivots", 1, 20, 1,
		func(c anim.Constants) float64 { return float64(c.Pivots) },
		func(c *anim.Constants, v float64) { c.Pivots = int(v) }, "%.0f"),
	{
		label: "endpoints",
		min:   float64(motion.Free),
		max:   float64(motion.Pinned),
		step:  1,
		get:   func(e *anim.Engine) float64 { return float64(e.Constants().Endpoints) },
		set: func(e *anim.Engine, v float64) {
			c := e.Constants()
			c.Endpoints = motion.Mode(v)
			e.SetConstants(c)
		},
		format: func(v float64) string { return motion.Mode(v).String() },
	},
}

// adjust moves row r of e by dir steps, clamped to the row's range, and
// reports whether the value changed.
func adjust(e *anim.Engine, r row, dir int) bool {
	old := r.get(e)
	v := old + float64(dir)*r.step
	// Snap to the step grid so repeated presses don't accumulate float error.
	v = r.min + math.Round((v-r.min)/r.step)*r.step
	v = math.Max(r.min, math.Min(r.max, v))
	if v == old {
		return false
	}
	r.set(e, v)
	return true
}

func (r row) ratio(e *anim.Engine) float64 {
	if r.max <= r.min {
		return 0
	}
	return (r.get(e) - r.min) / (r.max - r.min)
}

const (
	barWidth     = 10
	graphHeight  = 4
	graphSamples = 60
)

// panel is the tuning overlay.
type panel struct {
	visible  bool
	selected int
	bars     springField
	frames   []float64 // recent real frame intervals, ms
}

func newPanel(fps int) panel {
	return panel{bars: newSpringField(fps, 6.0, 0.9)}
}

func (p *panel) move(dir int) {
	p.selected = ((p.selected+dir)%len(rows) + len(rows)) % len(rows)
}

func (p *panel) recordFrame(ms float64) {
	if ms <= 0 {
		return
	}
	if len(p.frames) == graphSamples {
		copy(p.frames, p.frames[1:])
		p.frames = p.frames[:graphSamples-1]
	}
	p.frames = append(p.frames, ms)
}

// animate steps every bar toward its row's current value.
func (p *panel) animate(e *anim.Engine) {
	p.bars.resize(len(rows))
	for i, r := range rows {
		p.bars.step(i, r.ratio(e))
	}
}

func (p *panel) view(e *anim.Engine) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tuning"))
	b.WriteString("\n\n")

	p.bars.resize(len(rows))
	for i, r := range rows {
		label := labelStyle
		marker := "  "
		if i == p.selected {
			label = selectedStyle
			marker = "› "
		}
		b.WriteString(marker)
		b.WriteString(label.Render(r.label))
		b.WriteString(renderBar(p.bars.pos[i], barWidth))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(r.format(r.get(e))))
		b.WriteString("\n")
	}

	if len(p.frames) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(p.frames,
			asciigraph.Height(graphHeight),
			asciigraph.Width(panelWidth-12),
			asciigraph.Precision(0),
			asciigraph.Caption("frame ms"),
		))
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}
