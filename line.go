package curve

import (
	"cogentcore.org/core/math32"
)

// A Line is a straight segment between two points, evaluated by linear
// interpolation.
type Line[V Vector[V]] struct {
	// The line's start point.
	P0 V
	// The line's end point.
	P1 V
}

var _ Curve[math32.Vector2] = Line[math32.Vector2]{}
var _ Tangenter[math32.Vector2] = Line[math32.Vector2]{}

func (l Line[V]) Eval(t float32) V {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line.
func (l Line[V]) Length() float32 {
	return l.P0.DistanceTo(l.P1)
}

// Tangent returns the line's constant unit direction. This produces a zero
// vector if the line has zero length.
func (l Line[V]) Tangent(t float32) V {
	return l.P1.Sub(l.P0).Normal()
}

func (l Line[V]) Start() V { return l.P0 }
func (l Line[V]) End() V   { return l.P1 }

// Subsegment returns the line restricted to the given parameter range.
func (l Line[V]) Subsegment(start, end float32) Line[V] {
	return Line[V]{l.Eval(start), l.Eval(end)}
}

// Midpoint returns the point halfway along the line.
func (l Line[V]) Midpoint() V {
	return l.P0.Lerp(l.P1, 0.5)
}
