package curve

import (
	"cogentcore.org/core/math32"
)

var _ Curve[math32.Vector2] = EllipseArc{}
var _ Tangenter[math32.Vector2] = EllipseArc{}
var _ Closer = EllipseArc{}

// An EllipseArc is an elliptical arc swept from StartAngle to EndAngle,
// optionally rotated about its center.
type EllipseArc struct {
	Center math32.Vector2
	Radii  math32.Vector2
	// StartAngle and EndAngle delimit the sweep, in radians measured from
	// the (unrotated) x axis.
	StartAngle float32
	EndAngle   float32
	// XRotation rotates the whole ellipse about its center, in radians.
	XRotation float32
	// Clockwise makes the arc sweep in the direction of decreasing angles.
	Clockwise bool
}

// Circle returns the full circle of the given radius around center,
// parameterized counterclockwise from the positive x axis.
func Circle(center math32.Vector2, radius float32) EllipseArc {
	return EllipseArc{
		Center:   center,
		Radii:    math32.Vector2Scalar(radius),
		EndAngle: 2 * math32.Pi,
	}
}

// Eval returns the point at parameter t along the sweep.
func (e EllipseArc) Eval(t float32) math32.Vector2 {
	return e.sample(e.StartAngle + t*e.sweep()).Add(e.Center)
}

// Tangent returns the unit tangent at parameter t, pointing along the sweep
// direction. This produces a zero vector if both radii are zero.
func (e EllipseArc) Tangent(t float32) math32.Vector2 {
	sweep := e.sweep()
	sin, cos := math32.Sincos(e.StartAngle + t*sweep)
	d := math32.Vec2(-e.Radii.X*sin, e.Radii.Y*cos)
	if sweep < 0 {
		d = d.Negate()
	}
	return rotatePt(d, e.XRotation).Normal()
}

// IsClosed reports whether the arc sweeps the full ellipse.
func (e EllipseArc) IsClosed() bool {
	return math32.Abs(e.sweep()) >= 2*math32.Pi-epsilon
}

func (e EllipseArc) Start() math32.Vector2 { return e.Eval(0) }
func (e EllipseArc) End() math32.Vector2   { return e.Eval(1) }

// sweep returns the signed angular extent of the arc. The extent is
// normalized into (0, 2π] going counterclockwise, or [-2π, 0) going
// clockwise, with one exception: coinciding start and end angles mean an
// empty arc, not a full turn.
func (e EllipseArc) sweep() float32 {
	delta := e.EndAngle - e.StartAngle
	empty := math32.Abs(delta) < epsilon
	for delta < 0 {
		delta += 2 * math32.Pi
	}
	for delta > 2*math32.Pi {
		delta -= 2 * math32.Pi
	}
	if delta < epsilon {
		if empty {
			delta = 0
		} else {
			delta = 2 * math32.Pi
		}
	}
	if e.Clockwise && !empty {
		if delta == 2*math32.Pi {
			delta = -2 * math32.Pi
		} else {
			delta -= 2 * math32.Pi
		}
	}
	return delta
}

// sample returns the point on the ellipse at the given angle, relative to
// the center.
func (e EllipseArc) sample(angle float32) math32.Vector2 {
	sin, cos := math32.Sincos(angle)
	return rotatePt(math32.Vec2(e.Radii.X*cos, e.Radii.Y*sin), e.XRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt math32.Vector2, angle float32) math32.Vector2 {
	if angle == 0 {
		return pt
	}
	sin, cos := math32.Sincos(angle)
	return math32.Vec2(
		pt.X*cos-pt.Y*sin,
		pt.X*sin+pt.Y*cos,
	)
}
