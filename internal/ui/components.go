package ui

import (
	"strings"

	"github.com/charmbracelet/harmonica"
)

// renderBar draws ratio (clamped to [0,1]) as a bar of the given width.
func renderBar(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

// springField eases a row of bar positions toward their targets.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

func (s *springField) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}

// settle jumps every bar to its target.
func (s *springField) settle(targets []float64) {
	s.resize(len(targets))
	copy(s.pos, targets)
	clear(s.vel)
}
