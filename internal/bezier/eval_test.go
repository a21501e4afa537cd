package bezier

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestEvalEndpointsExact(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 1; n <= 16; n++ {
		b := NewBinomial(n)
		for range 20 {
			c := randomCurve(r, n)
			if got := b.Eval(c, 0); got != c[0] {
				t.Errorf("degree %d: Eval(0) = %v, want %v", n, got, c[0])
			}
			if got := b.Eval(c, 1); got != c[n] {
				t.Errorf("degree %d: Eval(1) = %v, want %v", n, got, c[n])
			}
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	for n := 1; n <= MaxDegree; n++ {
		b := NewBinomial(n)
		var w []float64
		for k := 0; k <= 100; k++ {
			tt := float64(k) / 100
			w = b.Weights(w[:0], tt)
			if len(w) != n+1 {
				t.Fatalf("degree %d: got %d weights", n, len(w))
			}
			if s := floats.Sum(w); math.Abs(s-1) > 1e-9 {
				t.Errorf("degree %d, t=%g: weights sum to %.15f", n, tt, s)
			}
		}
	}
}

func TestEvalLine(t *testing.T) {
	b := NewBinomial(1)
	c := Curve{Pt(0, 0), Pt(2, 4)}
	diff(t, Pt(0.5, 1), b.Eval(c, 0.25), approx)
	diff(t, Pt(1, 2), b.Eval(c, 0.5), approx)
}

func TestEvalQuadraticMidpoint(t *testing.T) {
	// B(½) = ¼P0 + ½P1 + ¼P2
	b := NewBinomial(2)
	c := Curve{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, Pt(1, 1), b.Eval(c, 0.5), approx)
}

func TestEvalShortCurve(t *testing.T) {
	b := NewBinomial(8)
	if got := b.Eval(nil, 0.5); got != (Point{}) {
		t.Errorf("Eval(nil) = %v, want origin", got)
	}
	// Must not panic on a curve with fewer than n+1 points.
	_ = b.Eval(Curve{Pt(1, 1), Pt(2, 2)}, 0.3)
}

func TestPolyline(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	b := NewBinomial(8)
	c := randomCurve(r, 8)

	pts := b.Polyline(nil, c, 10, nil, nil)
	if len(pts) != 11 {
		t.Fatalf("got %d points, want 11", len(pts))
	}
	diff(t, c[0], pts[0])
	diff(t, c[8], pts[10])
	diff(t, b.Eval(c, 0.3), pts[3], approx)
}

func TestPolylineAxes(t *testing.T) {
	b := NewBinomial(3)
	c := Curve{Pt(0, 0), Pt(0.3, 1), Pt(0.6, 0), Pt(1, 1)}

	pts := b.Polyline(nil, c, 4, Linear(200, 0), Linear(-100, 100))
	diff(t, Pt(0, 100), pts[0], approx)
	diff(t, Pt(200, 0), pts[4], approx)
}

func TestPolylineDegenerateSegments(t *testing.T) {
	b := NewBinomial(4)
	c := randomCurve(rand.New(rand.NewSource(3)), 4)
	for _, seg := range []int{0, -7} {
		pts := b.Polyline(nil, c, seg, nil, nil)
		if len(pts) != 2 {
			t.Errorf("segments=%d: got %d points, want 2", seg, len(pts))
		}
	}
}

func TestPolylineReusesBuffer(t *testing.T) {
	b := NewBinomial(4)
	c := randomCurve(rand.New(rand.NewSource(4)), 4)
	buf := make([]Point, 0, 64)
	pts := b.Polyline(buf, c, 20, nil, nil)
	if &pts[0] != &buf[:1][0] {
		t.Error("Polyline did not reuse the provided buffer")
	}
}
