// Package canvas is a drawing surface made of terminal cells. Each cell is
// a Unicode Braille character, a 2x4 grid of dots, so a canvas of c×r cells
// offers 2c×4r pixels.
package canvas

import (
	"image/color"
	"math"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/ribbon/internal/bezier"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// minVisibleAlpha is the opacity below which a stroke leaves no dots.
const minVisibleAlpha = 0.08

// Braille rasterizes polylines into Braille cells. Each cell takes the
// colour of the last stroke that touched it, blended toward the background
// by the stroke's opacity.
type Braille struct {
	cols, rows int
	dots       []uint8
	colors     []colorRGB

	stroke     colorRGB
	alpha      float64
	radius     int
	background colorRGB
	profile    termenv.Profile
}

// New returns a canvas of cols×rows cells using the terminal's colour
// profile.
func New(cols, rows int) *Braille {
	b := &Braille{profile: currentColorProfile(), alpha: 1, stroke: colorRGB{R: 255, G: 255, B: 255}}
	b.Resize(cols, rows)
	return b
}

// Resize changes the cell grid and clears it.
func (b *Braille) Resize(cols, rows int) {
	b.cols = max(cols, 0)
	b.rows = max(rows, 0)
	if b.cols == 0 || b.rows == 0 {
		b.cols, b.rows = 0, 0
	}
	n := b.cols * b.rows
	if cap(b.dots) < n {
		b.dots = make([]uint8, n)
		b.colors = make([]colorRGB, n)
	}
	b.dots = b.dots[:n]
	b.colors = b.colors[:n]
	b.Clear()
}

// Cells returns the grid size in terminal cells.
func (b *Braille) Cells() (cols, rows int) { return b.cols, b.rows }

// Size returns the grid size in dots.
func (b *Braille) Size() (w, h int) { return b.cols * 2, b.rows * 4 }

func (b *Braille) Clear() {
	clear(b.dots)
	clear(b.colors)
}

func (b *Braille) SetStrokeColor(c color.Color) {
	b.stroke, b.alpha = toRGB(c)
}

// SetLineWidth sets the stroke width in dots. Widths below 3 draw single
// dot lines.
func (b *Braille) SetLineWidth(w float64) {
	if math.IsNaN(w) {
		w = 1
	}
	b.radius = max(0, int((w-1)/2))
}

// Stroke draws the polyline through pts.
func (b *Braille) Stroke(pts []bezier.Point) {
	if b.alpha < minVisibleAlpha || len(b.dots) == 0 {
		return
	}
	c := b.stroke.blend(b.background, b.alpha)

	w, h := b.Size()
	for i := 1; i < len(pts); i++ {
		p, q, ok := clipSegment(pts[i-1], pts[i], -1, -1, float64(w), float64(h))
		if !ok {
			continue
		}
		b.line(int(math.Round(p.X)), int(math.Round(p.Y)), int(math.Round(q.X)), int(math.Round(q.Y)), c)
	}
	if len(pts) == 1 {
		b.plot(int(math.Round(pts[0].X)), int(math.Round(pts[0].Y)), c)
	}
}

// line is Bresenham's algorithm over all octants.
func (b *Braille) line(x0, y0, x1, y1 int, c colorRGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) plot(x, y int, c colorRGB) {
	for dy := -b.radius; dy <= b.radius; dy++ {
		for dx := -b.radius; dx <= b.radius; dx++ {
			b.set(x+dx, y+dy, c)
		}
	}
}

func (b *Braille) set(x, y int, c colorRGB) {
	w, h := b.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	cell := (y/4)*b.cols + x/2
	b.dots[cell] |= 1 << brailleBits[x%2][y%4]
	b.colors[cell] = c
}

// String renders the canvas as rows of Braille characters with ANSI colour.
// Empty cells are spaces.
func (b *Braille) String() string {
	var out strings.Builder
	out.Grow(b.cols * b.rows * 4)
	ansi := ansiState{profile: b.profile}
	for r := range b.rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range b.cols {
			i := r*b.cols + c
			if b.dots[i] == 0 {
				out.WriteByte(' ')
				continue
			}
			ansi.set(&out, b.colors[i])
			out.WriteRune(rune(0x2800 + int(b.dots[i])))
		}
		ansi.reset(&out)
	}
	return out.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clipSegment clips the segment pq to the rectangle [x0,x1]×[y0,y1]
// (Liang–Barsky). It reports false when nothing of the segment is inside
// or a coordinate is not finite.
func clipSegment(p, q bezier.Point, x0, y0, x1, y1 float64) (bezier.Point, bezier.Point, bool) {
	for _, v := range [...]float64{p.X, p.Y, q.X, q.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return p, q, false
		}
	}

	dx, dy := q.X-p.X, q.Y-p.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, p.X - x0},
		{dx, x1 - p.X},
		{-dy, p.Y - y0},
		{dy, y1 - p.Y},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			if r > t1 {
				return p, q, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p, q, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return bezier.Pt(p.X+t0*dx, p.Y+t0*dy), bezier.Pt(p.X+t1*dx, p.Y+t1*dy), true
}
