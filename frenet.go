package curve

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

var (
	// ErrNilCurve indicates a frame request against a nil sampler or curve.
	ErrNilCurve = errors.New("curve must not be nil")
	// ErrTooFewSegments indicates a segment count insufficient for frame transport.
	ErrTooFewSegments = errors.New("too few segments")
	// ErrDegenerateCurve indicates a curve whose tangent vanishes at the start.
	ErrDegenerateCurve = errors.New("curve is degenerate")
)

// Frames is a moving frame along a curve: parallel slices of unit tangents,
// normals, and binormals, one triple per sample point. Each triple is
// orthonormal and right-handed, with Binormals[i] = Tangents[i] × Normals[i].
type Frames struct {
	Tangents  []math32.Vector3
	Normals   []math32.Vector3
	Binormals []math32.Vector3
}

// FrenetFrames computes segments+1 moving frames at points spaced uniformly
// by arc length along the curve wrapped by s.
//
// The frames are built by parallel transport: the first normal is seeded
// from the world axis least aligned with the start tangent, and each
// subsequent frame is the previous one rotated by the minimal rotation that
// carries one tangent onto the next. Unlike the analytic Frenet-Serret
// frame, this construction doesn't flip at inflection points and degrades
// gracefully on straight runs, where consecutive tangents are collinear and
// the frame is carried unrotated.
//
// If closed is true, the residual angle between the first and last normal is
// distributed over all frames by re-rotating frame i about its tangent by
// i/segments of the residual, so the frame at the seam matches the frame at
// the start. Curves can report closedness via [Closer], but the choice is
// the caller's: transporting an open stretch of a closed curve is valid.
//
// FrenetFrames returns [ErrNilCurve], [ErrTooFewSegments], or
// [ErrDegenerateCurve] (possibly wrapped) when the input admits no
// orthonormal frame, rather than silently filling the result with zero
// vectors.
func FrenetFrames(s *Sampler[math32.Vector3], segments int, closed bool) (Frames, error) {
	if s == nil || s.curve == nil {
		return Frames{}, ErrNilCurve
	}
	if segments < 1 {
		return Frames{}, fmt.Errorf("%w: parallel transport needs at least 1, got %d", ErrTooFewSegments, segments)
	}

	f := Frames{
		Tangents:  make([]math32.Vector3, segments+1),
		Normals:   make([]math32.Vector3, segments+1),
		Binormals: make([]math32.Vector3, segments+1),
	}
	for i := range f.Tangents {
		f.Tangents[i] = s.TangentAt(float32(i) / float32(segments))
	}

	t0 := f.Tangents[0]
	if l := t0.Length(); !(l > 0) { // also catches NaN
		tracer().Errorf("degenerate curve: start tangent has magnitude %g", l)
		return Frames{}, fmt.Errorf("%w: start tangent has zero magnitude", ErrDegenerateCurve)
	}

	// Seed the first normal from the world axis least aligned with the start
	// tangent, crossing twice to land in the plane perpendicular to it.
	world := math32.Vec3(1, 0, 0)
	smallest := math32.Abs(t0.X)
	if a := math32.Abs(t0.Y); a <= smallest {
		smallest = a
		world = math32.Vec3(0, 1, 0)
	}
	if a := math32.Abs(t0.Z); a <= smallest {
		world = math32.Vec3(0, 0, 1)
	}
	v := t0.Cross(world).Normal()
	f.Normals[0] = t0.Cross(v)
	f.Binormals[0] = t0.Cross(f.Normals[0])

	for i := 1; i <= segments; i++ {
		f.Normals[i] = f.Normals[i-1]
		axis := f.Tangents[i-1].Cross(f.Tangents[i])
		if axis.Length() > epsilon {
			theta := math32.Acos(math32.Clamp(f.Tangents[i-1].Dot(f.Tangents[i]), -1, 1))
			f.Normals[i] = f.Normals[i].MulQuat(math32.NewQuatAxisAngle(axis.Normal(), theta))
		}
		f.Binormals[i] = f.Tangents[i].Cross(f.Normals[i])
	}

	if closed {
		theta := math32.Acos(math32.Clamp(f.Normals[0].Dot(f.Normals[segments]), -1, 1)) / float32(segments)
		if f.Tangents[0].Dot(f.Normals[0].Cross(f.Normals[segments])) > 0 {
			theta = -theta
		}
		for i := 1; i <= segments; i++ {
			f.Normals[i] = f.Normals[i].MulQuat(math32.NewQuatAxisAngle(f.Tangents[i], theta*float32(i)))
			f.Binormals[i] = f.Tangents[i].Cross(f.Normals[i])
		}
	}

	return f, nil
}

// MustFrenetFrames is like [FrenetFrames] but panics on error.
func MustFrenetFrames(s *Sampler[math32.Vector3], segments int, closed bool) Frames {
	f, err := FrenetFrames(s, segments, closed)
	if err != nil {
		panic(err)
	}
	return f
}
