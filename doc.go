// Package curve samples parametric curves by arc length. It was designed to
// serve geometry pipelines that need evenly spaced points and stable moving
// frames along arbitrary curves, such as tube extrusion, path animation, and
// polyline approximation.
//
// # Curves and samplers
//
// The two core primitives of this package are curves and samplers.
//
// [Curve] describes parametrized curves. These curves can be evaluated at
// t ∈ [0, 1] and return a vector, either a Vector2 or a Vector3 from
// [cogentcore.org/core/math32]; the package is generic over the two via the
// [Vector] constraint. The simplest curve is the [Line], whose evaluation is a linear
// interpolation between its start and end points. More complex curves are
// the quadratic and cubic Béziers, for example.
//
// Almost no curve is parameterized by arc length: equal steps of t cover
// unequal distances, bunching samples where the curve moves slowly. [Sampler]
// corrects for this. It wraps a curve, approximates its cumulative arc
// length with a lazily built, cached chord-length table, and inverts that
// table to answer queries in terms of covered distance: [Sampler.PointAt]
// and [Sampler.SpacedPoints] place points evenly along the curve no matter
// how the curve is parameterized. Samplers trade exactness for speed and
// generality; the table resolution bounds the error and is under caller
// control.
//
// [Tangenter] is an optional interface implemented by curves that can
// compute their unit tangent directly; all other curves get a central
// difference fallback. [Closer] is an optional interface implemented by
// curves that can form closed loops.
//
// This package includes the following curves:
//   - [CatmullRom]
//   - [CubicBez]
//   - [EllipseArc]
//   - [Line]
//   - [QuadBez]
//
// # Moving frames
//
// [FrenetFrames] attaches an orthonormal frame (tangent, normal, binormal)
// to each of a series of arc-length-uniform sample points on a 3D curve. The
// frames are computed by parallel transport rather than by the classical
// Frenet-Serret formulas: the analytic normal flips direction at inflection
// points and is undefined on straight runs, while the transported frame
// rotates minimally from one sample to the next and passes through both
// cases smoothly. For closed curves, the accumulated twist between the first
// and last frame is distributed evenly over the loop so the seam matches.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Parallel Transport Approach to Curve Framing] by Hanson and Ma
//   - [Calculation of Reference Frames along a Space Curve] by Bloomenthal
//   - [A Primer on Bézier Curves]
//   - [Catmull-Rom splines]
//
// [Parallel Transport Approach to Curve Framing]: https://legacy.cs.indiana.edu/ftp/techreports/TR425.pdf
// [Calculation of Reference Frames along a Space Curve]: https://webhome.cs.uvic.ca/~blob/courses/305/notes/pdf/ref-frames.pdf
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Catmull-Rom splines]: https://en.wikipedia.org/wiki/Centripetal_Catmull%E2%80%93Rom_spline
package curve
