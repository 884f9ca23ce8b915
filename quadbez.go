package curve

import (
	"cogentcore.org/core/math32"
)

var _ Curve[math32.Vector2] = QuadBez[math32.Vector2]{}
var _ Tangenter[math32.Vector2] = QuadBez[math32.Vector2]{}

// A QuadBez is a quadratic Bézier segment.
type QuadBez[V Vector[V]] struct {
	P0 V
	P1 V
	P2 V
}

func (q QuadBez[V]) Eval(t float32) V {
	mt := 1 - t
	return q.P0.MulScalar(mt * mt).
		Add(q.P1.MulScalar(2 * mt * t)).
		Add(q.P2.MulScalar(t * t))
}

// Deriv returns the derivative of the curve at parameter t. Unlike
// [QuadBez.Tangent] the result is not normalized.
func (q QuadBez[V]) Deriv(t float32) V {
	return q.P1.Sub(q.P0).MulScalar(2 * (1 - t)).
		Add(q.P2.Sub(q.P1).MulScalar(2 * t))
}

// Tangent returns the unit tangent at parameter t. Where the derivative
// vanishes, at an end point that coincides with the control point, the
// direction of the chord is used instead.
func (q QuadBez[V]) Tangent(t float32) V {
	d := q.Deriv(t)
	if !(d.Length() > 0) {
		d = q.P2.Sub(q.P0)
	}
	return d.Normal()
}

func (q QuadBez[V]) Start() V { return q.P0 }
func (q QuadBez[V]) End() V   { return q.P2 }

// Raise returns a cubic Bézier segment that exactly represents this
// quadratic.
func (q QuadBez[V]) Raise() CubicBez[V] {
	return CubicBez[V]{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).MulScalar(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).MulScalar(2.0 / 3.0)),
		q.P2,
	}
}
