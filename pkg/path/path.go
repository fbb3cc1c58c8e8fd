// Package path builds PathPoint snapshots (a CurvePoint plus heading)
// over a Curve, and composes them into point-turns and concatenated
// multi-segment paths.
package path

import (
	"github.com/wrenfield/trajcore/pkg/curve"
	"github.com/wrenfield/trajcore/pkg/geomath"
)

// PathPoint extends curve.CurvePoint with heading information and the
// derived pose triple.
type PathPoint struct {
	curve.CurvePoint

	Heading            float32
	HeadingDeriv       float32
	HeadingSecondDeriv float32
}

// Pose returns the (position, heading) pose at this point.
func (p PathPoint) Pose() geomath.Pose2d {
	return geomath.Pose2d{Position: p.Position, Heading: p.Heading}
}

// PoseDeriv returns the pose derivative w.r.t. arc length.
func (p PathPoint) PoseDeriv() geomath.Pose2d {
	return geomath.Pose2d{Position: p.PositionDeriv, Heading: p.HeadingDeriv}
}

// PoseSecondDeriv returns the pose second derivative w.r.t. arc length.
func (p PathPoint) PoseSecondDeriv() geomath.Pose2d {
	return geomath.Pose2d{Position: p.PositionSecondDeriv, Heading: p.HeadingSecondDeriv}
}

// Path is a lazy producer of PathPoint snapshots indexed by arc length.
type Path interface {
	Length() float32
	PointAt(s float32) PathPoint
	Stepper() Stepper
	Reversed() Path
}

// Stepper is a monotone-advance accessor over a Path.
type Stepper interface {
	StepTo(s float32) PathPoint
}

// HeadingProvider derives a path's heading triple from the underlying
// curve's CurvePoint at the same arc length.
type HeadingProvider func(cp curve.CurvePoint) (heading, headingDeriv, headingSecondDeriv float32)

// TangentHeading is the HeadingProvider for a robot that always faces
// the direction of travel: heading tracks the curve's tangent angle.
var TangentHeading HeadingProvider = func(cp curve.CurvePoint) (float32, float32, float32) {
	return cp.TanAngle, cp.TanAngleDeriv, cp.TanAngleSecondDeriv
}

// ConstantHeading returns a HeadingProvider that holds heading fixed
// regardless of position along the curve.
func ConstantHeading(heading float32) HeadingProvider {
	return func(curve.CurvePoint) (float32, float32, float32) {
		return heading, 0, 0
	}
}

// HeadingPath pairs a curve with a heading provider.
type HeadingPath struct {
	c       curve.Curve
	heading HeadingProvider
}

// NewHeadingPath builds a Path from a curve and a heading provider.
func NewHeadingPath(c curve.Curve, heading HeadingProvider) HeadingPath {
	return HeadingPath{c: c, heading: heading}
}

func (p HeadingPath) Length() float32 { return p.c.Length() }

func (p HeadingPath) PointAt(s float32) PathPoint {
	cp := p.c.PointAt(s)
	return p.attach(cp)
}

func (p HeadingPath) attach(cp curve.CurvePoint) PathPoint {
	h, hd, hdd := p.heading(cp)
	return PathPoint{CurvePoint: cp, Heading: h, HeadingDeriv: hd, HeadingSecondDeriv: hdd}
}

func (p HeadingPath) Stepper() Stepper {
	return &headingStepper{st: p.c.Stepper(), attach: p.attach}
}

func (p HeadingPath) Reversed() Path { return reversedPath{inner: p} }

type headingStepper struct {
	st     curve.Stepper
	attach func(curve.CurvePoint) PathPoint
}

func (s *headingStepper) StepTo(length float32) PathPoint {
	return s.attach(s.st.StepTo(length))
}
