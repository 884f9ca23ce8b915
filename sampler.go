package curve

import (
	"sort"

	"cogentcore.org/core/math32"
)

// defaultPointDivisions is used by [Sampler.Points] and
// [Sampler.SpacedPoints] when no resolution is given.
const defaultPointDivisions = 5

// A Sampler wraps a curve and caches its cumulative arc length table,
// providing queries in terms of covered arc length rather than the curve's
// native parameter. Uniform steps of the native parameter cover uneven
// distances on most curves; the remapping methods ([Sampler.ParamAt],
// [Sampler.PointAt], [Sampler.SpacedPoints]) undo that unevenness.
//
// The table is built lazily on first use and reused until the resolution
// changes or [Sampler.Invalidate] is called. A Sampler is not safe for
// concurrent use.
type Sampler[V Vector[V]] struct {
	curve Curve[V]

	// Divisions is the table resolution used when a query doesn't name one.
	// It takes effect on the next rebuild.
	Divisions int

	lengths []float32
	dirty   bool
}

// NewSampler returns a Sampler for c with the default table resolution.
func NewSampler[V Vector[V]](c Curve[V]) *Sampler[V] {
	return &Sampler[V]{curve: c, Divisions: DefaultDivisions}
}

// Curve returns the wrapped curve.
func (s *Sampler[V]) Curve() Curve[V] {
	return s.curve
}

// Lengths returns the cumulative arc length table of the curve: divisions+1
// entries, where entry d approximates the length of the curve restricted to
// [0, d/divisions] by summing chord lengths. Entry 0 is 0 and entries are
// non-decreasing. If divisions is zero or negative, [Sampler.Divisions] is
// used.
//
// Repeated calls at an unchanged resolution return the cached table without
// evaluating the curve again. Callers that mutate the curve's control data
// must call [Sampler.Invalidate] to get fresh results, and must not modify
// the returned slice.
func (s *Sampler[V]) Lengths(divisions int) []float32 {
	if divisions <= 0 {
		divisions = s.Divisions
	}
	if !s.dirty && len(s.lengths) == divisions+1 {
		return s.lengths
	}

	lengths := make([]float32, divisions+1)
	last := s.curve.Eval(0)
	var sum float32
	for d := 1; d <= divisions; d++ {
		pt := s.curve.Eval(float32(d) / float32(divisions))
		sum += pt.DistanceTo(last)
		lengths[d] = sum
		last = pt
	}
	s.lengths = lengths
	s.dirty = false
	tracer().Debugf("arc length table rebuilt: %d divisions, total length %g", divisions, sum)
	return s.lengths
}

// Length returns the approximate total arc length of the curve.
func (s *Sampler[V]) Length() float32 {
	lengths := s.Lengths(0)
	return lengths[len(lengths)-1]
}

// Invalidate marks the cached arc length table as stale, forcing the next
// query to resample the curve.
func (s *Sampler[V]) Invalidate() {
	s.dirty = true
}

// ParamAt maps an arc length fraction u ∈ [0, 1] to the curve parameter t at
// which the covered arc length is u times the total length. u values outside
// [0, 1] clamp to the corresponding end. If the curve has zero total length,
// the remap degrades to the identity and u is returned clamped to [0, 1].
func (s *Sampler[V]) ParamAt(u float32) float32 {
	lengths := s.Lengths(0)
	total := lengths[len(lengths)-1]
	if !(total > 0) { // also catches NaN
		tracer().Errorf("arc length remap on curve with zero length")
		return math32.Clamp(u, 0, 1)
	}
	return paramAtLength(u*total, lengths)
}

// ParamAtLength maps an absolute arc length to the curve parameter t at
// which that length has been covered. Lengths outside [0, [Sampler.Length]]
// clamp to the corresponding end.
func (s *Sampler[V]) ParamAtLength(length float32) float32 {
	lengths := s.Lengths(0)
	if !(lengths[len(lengths)-1] > 0) {
		tracer().Errorf("arc length remap on curve with zero length")
		return 0
	}
	return paramAtLength(length, lengths)
}

// paramAtLength locates target in the cumulative table and converts the
// fractional table position to a parameter.
func paramAtLength(target float32, lengths []float32) float32 {
	n := len(lengths)
	if !(target > 0) { // also catches NaN
		return 0
	}
	if target >= lengths[n-1] {
		return 1
	}
	// The largest i with lengths[i] <= target. Searching for the first entry
	// beyond the target steps over runs of equal entries, which keeps the
	// interpolation denominator positive.
	i := sort.Search(n, func(j int) bool { return lengths[j] > target }) - 1
	if lengths[i] == target {
		return float32(i) / float32(n-1)
	}
	frac := (target - lengths[i]) / (lengths[i+1] - lengths[i])
	return (float32(i) + frac) / float32(n-1)
}

// Point evaluates the curve at the raw parameter t.
func (s *Sampler[V]) Point(t float32) V {
	return s.curve.Eval(t)
}

// PointAt evaluates the curve at the arc length fraction u. Uniformly spaced
// u yield (approximately) equidistant points regardless of the curve's
// parameterization.
func (s *Sampler[V]) PointAt(u float32) V {
	return s.curve.Eval(s.ParamAt(u))
}

// Points samples divisions+1 points at uniformly spaced parameters. If
// divisions is zero or negative, 5 is used.
func (s *Sampler[V]) Points(divisions int) []V {
	if divisions <= 0 {
		divisions = defaultPointDivisions
	}
	pts := make([]V, divisions+1)
	for d := range pts {
		pts[d] = s.curve.Eval(float32(d) / float32(divisions))
	}
	return pts
}

// SpacedPoints samples divisions+1 points spaced uniformly by arc length. If
// divisions is zero or negative, 5 is used.
func (s *Sampler[V]) SpacedPoints(divisions int) []V {
	if divisions <= 0 {
		divisions = defaultPointDivisions
	}
	pts := make([]V, divisions+1)
	for d := range pts {
		pts[d] = s.PointAt(float32(d) / float32(divisions))
	}
	return pts
}

// Tangent returns the unit tangent of the curve at the raw parameter t.
//
// Curves can optionally implement [Tangenter], in which case this method
// defers to it. Otherwise the tangent is approximated by a central
// difference with both sample parameters clamped to [0, 1], so the curve is
// never evaluated outside its domain and the ends fall back to one-sided
// differences. This produces a zero vector if the two samples coincide.
func (s *Sampler[V]) Tangent(t float32) V {
	if tg, ok := s.curve.(Tangenter[V]); ok {
		return tg.Tangent(t)
	}
	t0 := t - tangentDelta
	t1 := t + tangentDelta
	if t0 < 0 {
		t0 = 0
	}
	if t1 > 1 {
		t1 = 1
	}
	return s.curve.Eval(t1).Sub(s.curve.Eval(t0)).Normal()
}

// TangentAt returns the unit tangent at the arc length fraction u.
func (s *Sampler[V]) TangentAt(u float32) V {
	return s.Tangent(s.ParamAt(u))
}
