// Package export renders frames to image files.
package export

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/olivier-w/ribbon/internal/bezier"
)

// PNG is an off-screen drawing surface backed by an anti-aliased raster.
type PNG struct {
	dc         *gg.Context
	background color.Color
}

// NewPNG returns a w×h surface with a black background.
func NewPNG(w, h int) *PNG {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	p := &PNG{dc: dc, background: color.Black}
	p.Clear()
	return p
}

func (p *PNG) Size() (w, h int) { return p.dc.Width(), p.dc.Height() }

func (p *PNG) Clear() {
	p.dc.SetColor(p.background)
	p.dc.Clear()
}

func (p *PNG) SetStrokeColor(c color.Color) { p.dc.SetColor(c) }

func (p *PNG) SetLineWidth(w float64) { p.dc.SetLineWidth(w) }

// Stroke draws the polyline through pts. Fewer than two points draw nothing.
func (p *PNG) Stroke(pts []bezier.Point) {
	if len(pts) < 2 {
		return
	}
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.Stroke()
}

// Image returns the rendered frame.
func (p *PNG) Image() image.Image { return p.dc.Image() }
