package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/ribbon/internal/motion"
)

func TestPaletteAtEnds(t *testing.T) {
	for _, p := range Palettes {
		require.NotEmpty(t, p.Colors, p.Name)
		assert.Equal(t, p.Colors[0], p.At(0), p.Name)
		assert.Equal(t, p.Colors[len(p.Colors)-1], p.At(1), p.Name)
		assert.Equal(t, p.Colors[len(p.Colors)-1], p.At(7), p.Name)
		assert.Equal(t, p.Colors[0], p.At(math.NaN()), p.Name)
	}
}

func TestPaletteNearest(t *testing.T) {
	p := Palettes[0]
	assert.Equal(t, p.Colors[0], p.Nearest(0))
	assert.Equal(t, p.Colors[3], p.Nearest(0.5))
	assert.Equal(t, p.Colors[6], p.Nearest(1))
}

func TestEmptyPalette(t *testing.T) {
	var p Palette
	assert.Equal(t, white, p.At(0.3))
	assert.Equal(t, white, p.Nearest(0.3))
}

func TestPaletteIndex(t *testing.T) {
	i, ok := PaletteIndex("rainbow")
	assert.True(t, ok)
	assert.Equal(t, "rainbow", Palettes[i].Name)

	_, ok = PaletteIndex("plaid")
	assert.False(t, ok)
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(Palettes[0].Colors[3], 0.5)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.A)
	assert.Equal(t, uint8(0), withAlpha(white, -3).A)
}

func TestSanitized(t *testing.T) {
	c := Constants{
		SpawnInterval: -5,
		MaxCurves:     1 << 20,
		Segments:      0,
		Speed:         math.Inf(1),
		Spread:        4,
		ClampLow:      0.9,
		ClampHigh:     0.2,
		Endpoints:     motion.Mode(42),
		Pivots:        0,
	}.Sanitized()

	assert.Equal(t, 0.0, c.SpawnInterval)
	assert.Equal(t, maxCurvesLimit, c.MaxCurves)
	assert.Equal(t, 1, c.Segments)
	assert.Equal(t, DefaultConstants().Speed, c.Speed)
	assert.Equal(t, 1.0, c.Spread)
	assert.Equal(t, 0.2, c.ClampLow)
	assert.Equal(t, 0.9, c.ClampHigh)
	assert.Equal(t, motion.Pinned, c.Endpoints)
	assert.Equal(t, 1, c.Pivots)

	d := DefaultConstants()
	assert.Equal(t, d, d.Sanitized(), "defaults are already sane")
}
