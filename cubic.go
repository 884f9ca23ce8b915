package curve

import (
	"cogentcore.org/core/math32"
)

var _ Curve[math32.Vector2] = CubicBez[math32.Vector2]{}
var _ Tangenter[math32.Vector2] = CubicBez[math32.Vector2]{}

type CubicBez[V Vector[V]] struct {
	P0 V
	P1 V
	P2 V
	P3 V
}

func (c CubicBez[V]) Eval(t float32) V {
	mt := 1 - t
	return c.P0.MulScalar(mt * mt * mt).
		Add(c.P1.MulScalar(3 * mt * mt * t)).
		Add(c.P2.MulScalar(3 * mt * t * t)).
		Add(c.P3.MulScalar(t * t * t))
}

// Deriv returns the derivative of the curve at parameter t. Unlike
// [CubicBez.Tangent] the result is not normalized.
func (c CubicBez[V]) Deriv(t float32) V {
	mt := 1 - t
	return c.P1.Sub(c.P0).MulScalar(3 * mt * mt).
		Add(c.P2.Sub(c.P1).MulScalar(6 * mt * t)).
		Add(c.P3.Sub(c.P2).MulScalar(3 * t * t))
}

// Tangent returns the unit tangent at parameter t. Where the derivative
// vanishes, at an end point that coincides with its control point, the
// direction of the chord is used instead.
func (c CubicBez[V]) Tangent(t float32) V {
	d := c.Deriv(t)
	if !(d.Length() > 0) {
		d = c.P3.Sub(c.P0)
	}
	return d.Normal()
}

func (c CubicBez[V]) Start() V { return c.P0 }
func (c CubicBez[V]) End() V   { return c.P3 }

// Subdivide splits the curve into halves with de Casteljau's algorithm.
func (c CubicBez[V]) Subdivide() (CubicBez[V], CubicBez[V]) {
	pm := c.Eval(0.5)
	l01 := c.P0.Lerp(c.P1, 0.5)
	l12 := c.P1.Lerp(c.P2, 0.5)
	l23 := c.P2.Lerp(c.P3, 0.5)
	left := CubicBez[V]{c.P0, l01, l01.Lerp(l12, 0.5), pm}
	right := CubicBez[V]{pm, l12.Lerp(l23, 0.5), l23, c.P3}
	return left, right
}
