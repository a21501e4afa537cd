package bezier

// Axis maps one curve-space coordinate to surface space. A nil Axis is the
// identity.
type Axis func(float64) float64

func (a Axis) apply(v float64) float64 {
	if a == nil {
		return v
	}
	return a(v)
}

// Linear returns the axis v ↦ offset + v·scale.
func Linear(scale, offset float64) Axis {
	return func(v float64) float64 { return offset + v*scale }
}

// Curve is a frozen, position-only set of control points.
type Curve []Point

// Clone returns a copy of c.
func (c Curve) Clone() Curve {
	return append(Curve(nil), c...)
}

// powers fills tp with t^0..t^n and up with (1-t)^0..(1-t)^n.
func powers(t float64, n int, tp, up *[MaxDegree + 1]float64) {
	u := 1 - t
	tp[0], up[0] = 1, 1
	for i := 1; i <= n; i++ {
		tp[i] = tp[i-1] * t
		up[i] = up[i-1] * u
	}
}

// Weights appends the n+1 Bernstein weights C(n,i)·(1−t)^(n−i)·t^i to dst.
func (b Binomial) Weights(dst []float64, t float64) []float64 {
	var tp, up [MaxDegree + 1]float64
	powers(t, b.n, &tp, &up)
	for i := 0; i <= b.n; i++ {
		dst = append(dst, float64(b.Coefficient(i))*up[b.n-i]*tp[i])
	}
	return dst
}

// Eval returns the point at parameter t of the curve with the given control
// points. The curve is expected to hold n+1 points; extra points are ignored
// and missing ones contribute nothing. Eval(ctrl, 0) is ctrl[0] and
// Eval(ctrl, 1) is ctrl[n], both exactly.
func (b Binomial) Eval(ctrl []Point, t float64) Point {
	var tp, up [MaxDegree + 1]float64
	powers(t, b.n, &tp, &up)

	var x, y float64
	for i := 0; i <= b.n && i < len(ctrl); i++ {
		w := float64(b.Coefficient(i)) * up[b.n-i] * tp[i]
		x += w * ctrl[i].X
		y += w * ctrl[i].Y
	}
	return Point{X: x, Y: y}
}

// Polyline samples the curve at segments+1 evenly spaced parameters from 0
// to 1 inclusive, maps each sample through xf and yf, and appends the
// results to dst[:0]. A segment count below 1 is treated as 1.
func (b Binomial) Polyline(dst []Point, ctrl []Point, segments int, xf, yf Axis) []Point {
	segments = max(segments, 1)
	dst = dst[:0]
	for k := 0; k <= segments; k++ {
		p := b.Eval(ctrl, float64(k)/float64(segments))
		dst = append(dst, Point{X: xf.apply(p.X), Y: yf.apply(p.Y)})
	}
	return dst
}
