// Package curve turns a reparameterized vector function into the
// CurvePoint snapshots (position, tangent, curvature, curvature-rate)
// that paths and constraints are built from.
package curve

import (
	"github.com/chewxy/math32"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/reparam"
	"github.com/wrenfield/trajcore/pkg/scalar"
	"github.com/wrenfield/trajcore/pkg/spline"
)

// CurvePoint is a snapshot of a curve's geometry at arc length s. Unlike
// the teacher's lazily-cached per-field accessors, every field is
// computed eagerly at construction: these snapshots are small and the
// memoization the teacher avoids elsewhere would mask recomputation cost
// rather than avoid it, per the design notes this module follows.
type CurvePoint struct {
	Length float32

	Position            geomath.Vector2d
	PositionDeriv       geomath.Vector2d // unit tangent; zero when p'(u)=0
	PositionSecondDeriv geomath.Vector2d

	TanAngle            float32
	TanAngleDeriv       float32 // curvature kappa = d(tanAngle)/ds
	TanAngleSecondDeriv float32 // dkappa/ds
}

// Curve is a lazy producer of CurvePoint snapshots indexed by arc
// length s in [0, Length()].
type Curve interface {
	Length() float32
	PointAt(s float32) CurvePoint
	Stepper() Stepper
	Reversed() Curve
}

// Stepper is a monotone-advance accessor: s must be non-decreasing
// across calls on the same Stepper.
type Stepper interface {
	StepTo(s float32) CurvePoint
}

// ReparamCurve wraps a spline.VectorFunction and its arc-length
// reparam.Mapping, converting s->u on every query and then evaluating
// all CurvePoint fields from the underlying function at u.
type ReparamCurve struct {
	fn      spline.VectorFunction
	mapping reparam.Mapping
}

// NewReparamCurve builds a curve from f, reparameterized over samples
// integration sub-intervals (<=0 uses reparam.DefaultSamples).
func NewReparamCurve(f spline.VectorFunction, samples int) ReparamCurve {
	return ReparamCurve{fn: f, mapping: reparam.Build(f, samples)}
}

// Length returns the curve's total arc length.
func (c ReparamCurve) Length() float32 { return c.mapping.Length() }

// PointAt converts s to u via the mapping and evaluates the snapshot.
func (c ReparamCurve) PointAt(s float32) CurvePoint {
	u := c.mapping.TOfS(s)
	return pointFromSpline(c.fn, u, s)
}

// Stepper returns a monotone accessor over this curve.
func (c ReparamCurve) Stepper() Stepper {
	return &reparamStepper{fn: c.fn, st: reparam.NewStepper(c.mapping)}
}

// Reversed returns a curve that queries the base curve at L-s and
// negates the first-order derivative fields, per the reversal contract:
// double reversal collapses structurally back to the original curve.
func (c ReparamCurve) Reversed() Curve {
	return reversedCurve{inner: c}
}

type reparamStepper struct {
	fn spline.VectorFunction
	st *reparam.Stepper
}

func (s *reparamStepper) StepTo(length float32) CurvePoint {
	u := s.st.StepTo(length)
	return pointFromSpline(s.fn, u, length)
}

func pointFromSpline(fn spline.VectorFunction, u, length float32) CurvePoint {
	d1 := fn.VecDeriv(u)
	speed := d1.Length()

	var tangent geomath.Vector2d
	if speed >= scalar.Epsilon {
		tangent = d1.Div(speed)
	}

	kappa := curvatureAt(fn, u, d1, speed)
	dkappa := curvatureDerivAt(fn, u, d1, speed, kappa)

	return CurvePoint{
		Length:              length,
		Position:            fn.Vec(u),
		PositionDeriv:       tangent,
		PositionSecondDeriv: tangent.Perpendicular().Mul(kappa),
		TanAngle:            math32.Atan2(d1.Y, d1.X),
		TanAngleDeriv:       kappa,
		TanAngleSecondDeriv: dkappa,
	}
}

func curvatureAt(fn spline.VectorFunction, u float32, d1 geomath.Vector2d, speed float32) float32 {
	if speed < scalar.Epsilon {
		return 0
	}
	d2 := fn.VecSecondDeriv(u)
	return scalar.NaNToZero(d1.Cross(d2) / (speed * speed * speed))
}

func curvatureDerivAt(fn spline.VectorFunction, u float32, d1 geomath.Vector2d, speed, kappa float32) float32 {
	if speed < scalar.Epsilon {
		return 0
	}
	d2 := fn.VecSecondDeriv(u)
	d3 := fn.VecThirdDeriv(u)
	speed4 := speed * speed * speed * speed
	term1 := d1.Cross(d3) / speed4
	term2 := 3 * kappa * d1.Dot(d2) / (speed * speed * speed)
	return scalar.NaNToZero(term1 - term2)
}

// reversedCurve maps a query at s to the base curve at Length()-s,
// negating first-order derivative fields. Its Stepper does not share the
// base curve's monotone cursor (the reversed access pattern walks the
// base curve backward) and instead re-queries PointAt each step; this is
// the one place in the package that pays O(log n) per step instead of
// O(1) amortized.
type reversedCurve struct {
	inner Curve
}

func (r reversedCurve) Length() float32 { return r.inner.Length() }

func (r reversedCurve) PointAt(s float32) CurvePoint {
	base := r.inner.PointAt(r.inner.Length() - s)
	return reverse(base, s)
}

func (r reversedCurve) Stepper() Stepper {
	return &reversedStepper{inner: r.inner}
}

// Reversed collapses structurally: reversing a reversed curve returns
// the original curve, not another wrapper layer.
func (r reversedCurve) Reversed() Curve { return r.inner }

type reversedStepper struct {
	inner Curve
}

func (s *reversedStepper) StepTo(length float32) CurvePoint {
	base := s.inner.PointAt(s.inner.Length() - length)
	return reverse(base, length)
}

// reverse applies the reversal contract literally: negate the named
// first derivatives (positionDeriv, tanAngleDeriv); position, tanAngle,
// and both second derivatives pass through unchanged.
func reverse(base CurvePoint, length float32) CurvePoint {
	return CurvePoint{
		Length:              length,
		Position:            base.Position,
		PositionDeriv:       base.PositionDeriv.Neg(),
		PositionSecondDeriv: base.PositionSecondDeriv,
		TanAngle:            base.TanAngle,
		TanAngleDeriv:       -base.TanAngleDeriv,
		TanAngleSecondDeriv: base.TanAngleSecondDeriv,
	}
}
