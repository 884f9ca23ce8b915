package curve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curve'
func tracer() tracing.Trace {
	return tracing.Select("curve")
}

// DefaultDivisions is the default resolution of cached arc length tables. It
// is suitable for general-purpose use; curves with very uneven speed may want
// a higher [Sampler.Divisions].
const DefaultDivisions = 200

// tangentDelta is the parameter step of the central difference used when a
// curve doesn't provide its own tangent.
const tangentDelta = 1e-4

// epsilon is the magnitude below which direction vectors are treated as zero.
const epsilon = 1e-7

// Vector is the constraint shared by the vector types this package samples:
// Vector2 and Vector3 from [cogentcore.org/core/math32]. It lists the subset
// of their common method set that sampling needs; three-dimensional
// operations such as the cross product stay out of it, so the frame builder
// requires math32.Vector3 explicitly.
type Vector[V any] interface {
	Add(other V) V
	Sub(other V) V
	MulScalar(s float32) V
	Dot(other V) float32
	Length() float32
	Normal() V
	DistanceTo(other V) float32
	Lerp(other V, alpha float32) V
}

// Curve describes a curve parametrized by a scalar.
//
// Eval is the only required operation; everything else, including arc
// lengths, uniform spacing, and moving frames, is derived from it by
// [Sampler]. The parameterization doesn't need to be uniform in speed: that
// is precisely what [Sampler] corrects for.
type Curve[V Vector[V]] interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float32) V
}

// Tangenter is an optional interface implemented by curves that can compute
// their unit tangent directly, avoiding the central difference fallback of
// [Sampler.Tangent].
type Tangenter[V Vector[V]] interface {
	// Tangent returns the unit tangent of the curve at parameter t.
	Tangent(t float32) V
}

// Closer is an optional interface implemented by curves that can form a
// closed loop.
type Closer interface {
	// IsClosed reports whether the curve returns to its start point.
	IsClosed() bool
}

// IsClosed reports whether a curve declares itself closed.
//
// Curves can optionally implement [Closer], in which case this function
// defers to it. All other curves are considered open.
func IsClosed[V Vector[V]](c Curve[V]) bool {
	if cl, ok := c.(Closer); ok {
		return cl.IsClosed()
	}
	return false
}
