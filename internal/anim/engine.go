// Package anim composes curve evaluation, control point motion and curve
// history into a running animation.
package anim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/olivier-w/ribbon/internal/bezier"
	"github.com/olivier-w/ribbon/internal/motion"
)

// Kind selects an animation strategy.
type Kind uint8

const (
	// Sliding animates one curve and leaves a trail of snapshots that
	// slides up and fades.
	Sliding Kind = iota
	// Twisting animates a few pivot curves and interpolates the rest.
	Twisting
)

// Kinds lists every strategy.
var Kinds = []Kind{Sliding, Twisting}

func (k Kind) String() string {
	switch k {
	case Twisting:
		return "twisting"
	default:
		return "sliding"
	}
}

// Next cycles to the next strategy.
func (k Kind) Next() Kind {
	return Kinds[(int(k)+1)%len(Kinds)]
}

// ParseKind parses a strategy name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want sliding or twisting)", s)
}

// strategy is the per-frame cycle shared by Sliding and Twisting. draw must
// not change any state.
type strategy interface {
	init(e *Engine, c Constants)
	update(e *Engine, c Constants, now, elapsed float64)
	draw(e *Engine, c Constants, s Surface, now float64)
	curves() int
}

func newStrategy(k Kind) strategy {
	if k == Twisting {
		return &twisting{}
	}
	return &sliding{}
}

// Degree bounds accepted by SetDegree.
const (
	MinDegree = 1
	MaxDegree = bezier.MaxDegree
)

// Engine owns all animation state. It is not safe for concurrent use; the
// frame loop drives it from a single goroutine.
type Engine struct {
	consts   Constants
	degree   int
	binom    bezier.Binomial
	rng      *rand.Rand
	palette  int
	kind     Kind
	strategy strategy
	ready    bool
}

// New returns a ready engine. rng drives every random choice, so a seeded
// source makes runs reproducible.
func New(kind Kind, degree int, consts Constants, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e := &Engine{consts: consts, kind: kind, rng: rng}
	e.SetDegree(degree)
	return e
}

// SetDegree rebuilds the coefficient table for degree n, clamped to
// [MinDegree, MaxDegree], and reseeds every curve. The engine is not ready
// while this runs.
func (e *Engine) SetDegree(n int) {
	e.ready = false
	e.degree = max(MinDegree, min(n, MaxDegree))
	e.binom = bezier.NewBinomial(e.degree)
	e.reseed()
	e.ready = true
}

// SetKind switches strategy and reseeds.
func (e *Engine) SetKind(k Kind) {
	e.ready = false
	e.kind = k
	e.reseed()
	e.ready = true
}

func (e *Engine) reseed() {
	e.strategy = newStrategy(e.kind)
	e.strategy.init(e, e.consts.Sanitized())
}

// Ready reports whether the coefficient table and curves are usable.
func (e *Engine) Ready() bool { return e.ready }

func (e *Engine) Degree() int { return e.degree }
func (e *Engine) Kind() Kind  { return e.kind }

// Constants returns the current constants as set, before sanitizing.
func (e *Engine) Constants() Constants { return e.consts }

// SetConstants replaces the constants. They apply from the next update.
func (e *Engine) SetConstants(c Constants) { e.consts = c }

// Palette returns the active palette.
func (e *Engine) Palette() Palette {
	if len(Palettes) == 0 {
		return Palette{}
	}
	return Palettes[e.palette%len(Palettes)]
}

// SetPalette selects a palette by index, wrapping around.
func (e *Engine) SetPalette(i int) {
	if len(Palettes) == 0 {
		return
	}
	e.palette = ((i % len(Palettes)) + len(Palettes)) % len(Palettes)
}

// CyclePalette advances to the next palette. It takes effect on the next
// draw.
func (e *Engine) CyclePalette() {
	e.SetPalette(e.palette + 1)
}

// Curves returns how many curves the current strategy holds.
func (e *Engine) Curves() int {
	if !e.ready {
		return 0
	}
	return e.strategy.curves()
}

// Update advances the simulation to now, elapsed milliseconds after the
// previous update.
func (e *Engine) Update(now, elapsed float64) {
	if !e.ready {
		return
	}
	e.strategy.update(e, e.consts.Sanitized(), now, elapsed)
}

// Draw renders the current state onto s. It never changes the engine, so
// drawing twice between updates gives the same picture.
func (e *Engine) Draw(s Surface, now float64) {
	if !e.ready || s == nil {
		return
	}
	e.strategy.draw(e, e.consts.Sanitized(), s, now)
}

func (e *Engine) mover(c Constants) motion.Mover {
	return motion.Mover{
		Speed:     c.Speed,
		Spread:    c.Spread,
		ClampLow:  c.ClampLow,
		ClampHigh: c.ClampHigh,
		Rand:      e.rng,
	}
}
