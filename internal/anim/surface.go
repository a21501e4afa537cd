package anim

import (
	"image/color"

	"github.com/olivier-w/ribbon/internal/bezier"
)

// Surface is a rectangular drawing region measured in pixels, with the
// origin at the top left.
type Surface interface {
	Size() (w, h int)
	Clear()
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	// Stroke draws an open polyline through pts, given in pixels.
	Stroke(pts []bezier.Point)
}

// stack maps curve space onto a surface of the given size with the curve's
// vertical centre lifted by offset (a share of the height) above the
// baseline.
func stack(c Constants, w, h int, offset float64) (bezier.Axis, bezier.Axis) {
	fw, fh := float64(w), float64(h)
	centre := c.Baseline - offset
	return bezier.Linear(fw, 0), bezier.Linear(c.Compression*fh, (centre-0.5*c.Compression)*fh)
}
