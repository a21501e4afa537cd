package canvas

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/olivier-w/ribbon/internal/bezier"
)

func plain(cols, rows int) *Braille {
	b := New(cols, rows)
	b.profile = termenv.Ascii
	return b
}

func TestSizeInDots(t *testing.T) {
	b := plain(10, 3)
	w, h := b.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 12, h)
}

func TestDiagonal(t *testing.T) {
	b := plain(2, 1)
	b.Stroke([]bezier.Point{bezier.Pt(0, 0), bezier.Pt(3, 3)})

	// (0,0),(1,1) fall in the first cell; (2,2),(3,3) in the second.
	want := string([]rune{0x2800 | 1<<0 | 1<<4, 0x2800 | 1<<2 | 1<<7})
	assert.Equal(t, want, b.String())
}

func TestEmptyCellsAreSpaces(t *testing.T) {
	b := plain(3, 2)
	assert.Equal(t, "   \n   ", b.String())
}

func TestClearAndResize(t *testing.T) {
	b := plain(4, 1)
	b.Stroke([]bezier.Point{bezier.Pt(0, 0), bezier.Pt(7, 0)})
	assert.NotEqual(t, "    ", b.String())

	b.Clear()
	assert.Equal(t, "    ", b.String())

	b.Resize(2, 2)
	assert.Equal(t, "  \n  ", b.String())
	b.Resize(-1, 5)
	assert.Equal(t, "", b.String())
	b.Stroke([]bezier.Point{bezier.Pt(0, 0), bezier.Pt(1, 1)})
}

func TestStrokeClipsFarPoints(t *testing.T) {
	b := plain(5, 2)
	// Coordinates far outside the canvas must not stall the rasterizer.
	b.Stroke([]bezier.Point{bezier.Pt(-1e12, 4), bezier.Pt(1e12, 4)})
	rows := strings.Split(b.String(), "\n")
	assert.Equal(t, strings.Repeat(string(rune(0x2800|1<<0|1<<3)), 5), rows[1])

	b.Clear()
	b.Stroke([]bezier.Point{bezier.Pt(math.NaN(), 0), bezier.Pt(3, 3)})
	b.Stroke([]bezier.Point{bezier.Pt(-50, -50), bezier.Pt(-10, -40)})
	assert.Equal(t, "     \n     ", b.String())
}

func TestTransparentStrokeIsSkipped(t *testing.T) {
	b := plain(2, 1)
	b.SetStrokeColor(color.NRGBA{R: 255, A: 5})
	b.Stroke([]bezier.Point{bezier.Pt(0, 0), bezier.Pt(3, 3)})
	assert.Equal(t, "  ", b.String())
}

func TestAlphaBlendsTowardBackground(t *testing.T) {
	b := plain(1, 1)
	b.SetStrokeColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	b.Stroke([]bezier.Point{bezier.Pt(0, 0)})
	assert.Equal(t, colorRGB{R: 100, G: 50, B: 25}, b.colors[0])
}

func TestLineWidthThickens(t *testing.T) {
	b := plain(2, 1)
	b.SetLineWidth(3)
	b.Stroke([]bezier.Point{bezier.Pt(1, 1)})
	// A 3x3 block around (1,1) covers rows 0..2 of columns 0..2.
	want := string([]rune{0x2800 | 0x3f, 0x2800 | 1<<0 | 1<<1 | 1<<2})
	assert.Equal(t, want, b.String())
}

func TestColorSequences(t *testing.T) {
	b := New(1, 1)
	b.profile = termenv.TrueColor
	b.SetStrokeColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	b.Stroke([]bezier.Point{bezier.Pt(0, 0)})
	assert.Equal(t, "\x1b[38;2;10;20;30m"+string(rune(0x2801))+"\x1b[0m", b.String())

	assert.Equal(t, "\x1b[38;5;16m", colorSequence(termenv.ANSI256, colorRGB{}))
	assert.Equal(t, "\x1b[91m", colorSequence(termenv.ANSI, colorRGB{R: 255}))
	assert.Empty(t, colorSequence(termenv.Ascii, colorRGB{R: 255}))
}

func TestRepeatedColorWritesOneSequence(t *testing.T) {
	b := New(2, 1)
	b.profile = termenv.TrueColor
	b.SetStrokeColor(color.NRGBA{R: 255, A: 255})
	b.Stroke([]bezier.Point{bezier.Pt(0, 0), bezier.Pt(3, 0)})
	out := b.String()
	assert.Equal(t, 1, strings.Count(out, "\x1b[38;2;255;0;0m"))
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"))
}

func TestClipSegment(t *testing.T) {
	p, q, ok := clipSegment(bezier.Pt(-10, 5), bezier.Pt(10, 5), 0, 0, 5, 8)
	assert.True(t, ok)
	assert.Equal(t, bezier.Pt(0, 5), p)
	assert.Equal(t, bezier.Pt(5, 5), q)

	_, _, ok = clipSegment(bezier.Pt(-10, -5), bezier.Pt(-1, -1), 0, 0, 4, 8)
	assert.False(t, ok)
}

func TestProfileNameMatchesDetectedProfile(t *testing.T) {
	want := map[termenv.Profile]string{
		termenv.TrueColor: "truecolor",
		termenv.ANSI256:   "256",
		termenv.ANSI:      "16",
		termenv.Ascii:     "none",
	}
	assert.Equal(t, want[currentColorProfile()], ProfileName())
}
