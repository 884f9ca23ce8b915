package curve

import (
	"cogentcore.org/core/math32"
)

var _ Curve[math32.Vector3] = CatmullRom[math32.Vector3]{}
var _ Closer = CatmullRom[math32.Vector3]{}

// A CatmullRom is a spline that interpolates a sequence of control points
// with piecewise cubic Hermite segments, in the uniform Catmull-Rom form.
//
// Open splines reflect the first and last control point to obtain the
// missing outer neighbors, so the end segments don't need special casing.
// Closed splines wrap around instead and evaluate to Points[0] at both ends
// of the parameter range.
type CatmullRom[V Vector[V]] struct {
	Points []V

	// Closed joins the last control point back to the first.
	Closed bool

	// Tension scales the segment end tangents. [NewCatmullRom] sets 0.5, the
	// classic Catmull-Rom value; 0 yields a taut spline that halts at every
	// control point.
	Tension float32
}

// NewCatmullRom returns a spline through the given points with the classic
// tension of 0.5.
func NewCatmullRom[V Vector[V]](points []V, closed bool) CatmullRom[V] {
	return CatmullRom[V]{Points: points, Closed: closed, Tension: 0.5}
}

// IsClosed reports whether the spline loops back to its first control point.
func (c CatmullRom[V]) IsClosed() bool {
	return c.Closed
}

// Eval evaluates the spline at parameter t ∈ [0, 1], clamped. The parameter
// range spans all segments uniformly: with n control points there are n
// segments when closed, n-1 when open.
func (c CatmullRom[V]) Eval(t float32) V {
	n := len(c.Points)
	switch n {
	case 0:
		var zero V
		return zero
	case 1:
		return c.Points[0]
	}

	segments := n - 1
	if c.Closed {
		segments = n
	}
	p := math32.Clamp(t, 0, 1) * float32(segments)
	i := int(math32.Floor(p))
	w := p - float32(i)
	if c.Closed {
		if i <= 0 {
			i += n
		}
	} else if w == 0 && i == segments {
		i = segments - 1
		w = 1
	}

	var p0, p3 V
	if c.Closed || i > 0 {
		p0 = c.Points[(i-1)%n]
	} else {
		// Reflect the second point across the first.
		p0 = c.Points[0].MulScalar(2).Sub(c.Points[1])
	}
	p1 := c.Points[i%n]
	p2 := c.Points[(i+1)%n]
	if c.Closed || i+2 < n {
		p3 = c.Points[(i+2)%n]
	} else {
		p3 = c.Points[n-1].MulScalar(2).Sub(c.Points[n-2])
	}

	m1 := p2.Sub(p0).MulScalar(c.Tension)
	m2 := p3.Sub(p1).MulScalar(c.Tension)
	w2 := w * w
	w3 := w * w2
	return p1.MulScalar(2*w3 - 3*w2 + 1).
		Add(m1.MulScalar(w3 - 2*w2 + w)).
		Add(p2.MulScalar(-2*w3 + 3*w2)).
		Add(m2.MulScalar(w3 - w2))
}
