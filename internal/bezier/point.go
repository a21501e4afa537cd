// Package bezier evaluates Bézier curves of arbitrary degree in Bernstein form.
package bezier

import (
	"fmt"
	"math"
)

// Point is a position in curve space. Curves live in the normalized
// [0,1]×[0,1] square; callers map them to pixels with an [Axis] pair.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add translates pt by v.
func (pt Point) Add(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp linearly interpolates between two points. Lerp(o, 0) is pt and
// Lerp(o, 1) is o, both exactly.
func (pt Point) Lerp(o Point, t float64) Point {
	u := 1 - t
	return Point{
		X: pt.X*u + o.X*t,
		Y: pt.Y*u + o.Y*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// The zero vector normalizes to itself rather than to NaN.
func (v Vec2) Normalize() Vec2 {
	h := math.Hypot(v.X, v.Y)
	if h == 0 {
		return Vec2{}
	}
	return v.Mul(1.0 / h)
}
