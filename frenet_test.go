package curve

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// helix winds twice around the z axis while rising.
type helix struct{}

func (helix) Eval(t float32) math32.Vector3 {
	sin, cos := math32.Sincos(4 * math32.Pi * t)
	return math32.Vec3(2*cos, 2*sin, 3*t)
}

// warpedLoop is a closed loop whose height oscillates, so transporting a
// frame around it accumulates twist.
type warpedLoop struct{}

func (warpedLoop) Eval(t float32) math32.Vector3 {
	a := 2 * math32.Pi * t
	sin, cos := math32.Sincos(a)
	return math32.Vec3(cos, sin, 0.3*math32.Sin(2*a))
}

func (warpedLoop) IsClosed() bool { return true }

func checkOrthonormal(t *testing.T, f Frames, tol float32) {
	t.Helper()
	for i := range f.Tangents {
		tan, nor, bin := f.Tangents[i], f.Normals[i], f.Binormals[i]
		if math32.Abs(tan.Length()-1) > tol {
			t.Errorf("frame %d: tangent has length %g", i, tan.Length())
		}
		if math32.Abs(nor.Length()-1) > tol {
			t.Errorf("frame %d: normal has length %g", i, nor.Length())
		}
		if d := math32.Abs(tan.Dot(nor)); d > tol {
			t.Errorf("frame %d: tangent and normal not perpendicular, dot %g", i, d)
		}
		if want := tan.Cross(nor); want.DistanceTo(bin) > tol {
			t.Errorf("frame %d: binormal %v, expected tangent cross normal = %v", i, bin, want)
		}
	}
}

func TestFrenetFramesLine(t *testing.T) {
	l := Line[math32.Vector3]{math32.Vec3(0, 0, 0), math32.Vec3(0, 10, 0)}
	s := NewSampler[math32.Vector3](l)

	f, err := FrenetFrames(s, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Tangents) != 5 || len(f.Normals) != 5 || len(f.Binormals) != 5 {
		t.Fatalf("got %d/%d/%d frame entries, expected 5 each",
			len(f.Tangents), len(f.Normals), len(f.Binormals))
	}

	// Consecutive tangents are collinear, so the seed frame is carried
	// through unrotated.
	for i := range f.Tangents {
		if f.Tangents[i] != math32.Vec3(0, 1, 0) {
			t.Errorf("tangent %d is %v", i, f.Tangents[i])
		}
		if f.Normals[i] != math32.Vec3(0, 0, -1) {
			t.Errorf("normal %d is %v", i, f.Normals[i])
		}
		if f.Binormals[i] != math32.Vec3(-1, 0, 0) {
			t.Errorf("binormal %d is %v", i, f.Binormals[i])
		}
	}
}

func TestFrenetFramesHelix(t *testing.T) {
	s := NewSampler[math32.Vector3](helix{})

	const segments = 64
	f, err := FrenetFrames(s, segments, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Normals) != segments+1 {
		t.Fatalf("got %d frames, expected %d", len(f.Normals), segments+1)
	}
	checkOrthonormal(t, f, 5e-3)

	// Parallel transport turns each frame minimally, so consecutive normals
	// stay close. An analytic Frenet frame would be allowed to flip.
	for i := 1; i < len(f.Normals); i++ {
		if d := f.Normals[i].DistanceTo(f.Normals[i-1]); d > 0.5 {
			t.Errorf("normal jumps by %g between frames %d and %d", d, i-1, i)
		}
	}
}

func TestFrenetFramesClosedSeam(t *testing.T) {
	s := NewSampler[math32.Vector3](warpedLoop{})

	const segments = 100
	f, err := FrenetFrames(s, segments, IsClosed[math32.Vector3](warpedLoop{}))
	if err != nil {
		t.Fatal(err)
	}
	checkOrthonormal(t, f, 5e-3)

	// The residual twist has been spread around the loop, closing the seam.
	if d := f.Normals[0].DistanceTo(f.Normals[segments]); d > 1e-2 {
		t.Errorf("normals differ by %g across the seam", d)
	}
	if d := f.Binormals[0].DistanceTo(f.Binormals[segments]); d > 1e-2 {
		t.Errorf("binormals differ by %g across the seam", d)
	}
	for i := 1; i < len(f.Normals); i++ {
		if d := f.Normals[i].DistanceTo(f.Normals[i-1]); d > 0.5 {
			t.Errorf("normal jumps by %g between frames %d and %d", d, i-1, i)
		}
	}
}

func TestFrenetFramesErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	if _, err := FrenetFrames(nil, 8, false); !errors.Is(err, ErrNilCurve) {
		t.Errorf("nil sampler: got %v", err)
	}
	if _, err := FrenetFrames(NewSampler[math32.Vector3](nil), 8, false); !errors.Is(err, ErrNilCurve) {
		t.Errorf("nil curve: got %v", err)
	}

	s := NewSampler[math32.Vector3](helix{})
	if _, err := FrenetFrames(s, 0, false); !errors.Is(err, ErrTooFewSegments) {
		t.Errorf("zero segments: got %v", err)
	}

	pt := math32.Vec3(1, 2, 3)
	point := NewSampler[math32.Vector3](Line[math32.Vector3]{pt, pt})
	if _, err := FrenetFrames(point, 8, false); !errors.Is(err, ErrDegenerateCurve) {
		t.Errorf("point curve: got %v", err)
	}
}

func TestMustFrenetFramesPanics(t *testing.T) {
	mustPanic(t, func() {
		MustFrenetFrames(nil, 8, false)
	})

	s := NewSampler[math32.Vector3](helix{})
	f := MustFrenetFrames(s, 8, false)
	if len(f.Tangents) != 9 {
		t.Errorf("got %d frames, expected 9", len(f.Tangents))
	}
}

func BenchmarkFrenetFrames(b *testing.B) {
	s := NewSampler[math32.Vector3](helix{})
	s.Lengths(0)
	b.ResetTimer()
	for range b.N {
		MustFrenetFrames(s, 100, false)
	}
}
