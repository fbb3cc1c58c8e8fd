// Package spline implements the quintic vector function p(u) that
// curves are built from, generalizing the teacher's arc-length chaining
// idea in control/motion/planner.newPathContext from piecewise-linear
// waypoints to a smooth, twice-differentiable parametric curve.
package spline

import (
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/scalar"
)

// VectorFunction is a twice-continuously-differentiable (in practice,
// three-times) vector function of a natural parameter u, the input the
// reparam package consumes to build arc-length curves.
type VectorFunction interface {
	Vec(u float32) geomath.Vector2d
	VecDeriv(u float32) geomath.Vector2d
	VecSecondDeriv(u float32) geomath.Vector2d
	VecThirdDeriv(u float32) geomath.Vector2d
}

// QuinticSpline is a degree-5 Bezier curve p(u) = sum C(5,i) P_i
// (1-u)^(5-i) u^i, u in [0,1]. It satisfies VectorFunction and adds the
// curvature and curvature-rate accessors the curve package needs.
type QuinticSpline struct {
	points [6]geomath.Vector2d
}

// NewQuinticFromControlPoints builds a quintic Bezier spline directly
// from its six control points.
func NewQuinticFromControlPoints(p0, p1, p2, p3, p4, p5 geomath.Vector2d) QuinticSpline {
	return QuinticSpline{points: [6]geomath.Vector2d{p0, p1, p2, p3, p4, p5}}
}

// NewQuinticFromEndpoints builds a quintic spline matching position,
// velocity, and acceleration at both endpoints of u in [0,1], via the
// standard quintic Hermite-to-Bezier control point conversion:
//
//	P0=pos0                         P5=pos1
//	P1=pos0+vel0/5                  P4=pos1-vel1/5
//	P2=pos0+2*vel0/5+acc0/20        P3=pos1-2*vel1/5+acc1/20
func NewQuinticFromEndpoints(pos0, vel0, acc0, pos1, vel1, acc1 geomath.Vector2d) QuinticSpline {
	p0 := pos0
	p1 := pos0.Add(vel0.Div(5))
	p2 := pos0.Add(vel0.Mul(2.0 / 5.0)).Add(acc0.Div(20))
	p5 := pos1
	p4 := pos1.Sub(vel1.Div(5))
	p3 := pos1.Sub(vel1.Mul(2.0 / 5.0)).Add(acc1.Div(20))
	return NewQuinticFromControlPoints(p0, p1, p2, p3, p4, p5)
}

// ControlPoints returns the six Bezier control points.
func (q QuinticSpline) ControlPoints() [6]geomath.Vector2d { return q.points }

// Vec evaluates p(u) via De Casteljau's algorithm.
func (q QuinticSpline) Vec(u float32) geomath.Vector2d {
	return deCasteljau(q.points[:], u)
}

// VecDeriv returns p'(u) = 5 * Bezier_4(forward differences of P).
func (q QuinticSpline) VecDeriv(u float32) geomath.Vector2d {
	d := forwardDiff(q.points[:])
	return deCasteljau(d, u).Mul(5)
}

// VecSecondDeriv returns p''(u) = 20 * Bezier_3(second differences).
func (q QuinticSpline) VecSecondDeriv(u float32) geomath.Vector2d {
	d := forwardDiff(forwardDiff(q.points[:]))
	return deCasteljau(d, u).Mul(20)
}

// VecThirdDeriv returns p'''(u) = 60 * Bezier_2(third differences).
func (q QuinticSpline) VecThirdDeriv(u float32) geomath.Vector2d {
	d := forwardDiff(forwardDiff(forwardDiff(q.points[:])))
	return deCasteljau(d, u).Mul(60)
}

// Curvature returns kappa(u) = (p'xp'')/|p'|^3. When p'(u)=0 the curve
// has no well-defined tangent and curvature is defined as zero rather
// than NaN, per the degenerate-case contract.
func (q QuinticSpline) Curvature(u float32) float32 {
	d1 := q.VecDeriv(u)
	d2 := q.VecSecondDeriv(u)
	speed := d1.Length()
	if speed < scalar.Epsilon {
		return 0
	}
	return scalar.NaNToZero(d1.Cross(d2) / (speed * speed * speed))
}

// CurvatureDeriv returns dkappa/du = (p'xp''')/|p'|^3 -
// 3*(p'xp'')*(p'.p'')/|p'|^5.
func (q QuinticSpline) CurvatureDeriv(u float32) float32 {
	d1 := q.VecDeriv(u)
	d2 := q.VecSecondDeriv(u)
	d3 := q.VecThirdDeriv(u)
	speed := d1.Length()
	if speed < scalar.Epsilon {
		return 0
	}
	speed3 := speed * speed * speed
	speed5 := speed3 * speed * speed
	term1 := d1.Cross(d3) / speed3
	term2 := 3 * d1.Cross(d2) * d1.Dot(d2) / speed5
	return scalar.NaNToZero(term1 - term2)
}

// deCasteljau evaluates the Bezier curve defined by points at parameter u.
func deCasteljau(points []geomath.Vector2d, u float32) geomath.Vector2d {
	work := make([]geomath.Vector2d, len(points))
	copy(work, points)
	for level := len(work) - 1; level > 0; level-- {
		for i := 0; i < level; i++ {
			work[i] = lerp(work[i], work[i+1], u)
		}
	}
	return work[0]
}

func lerp(a, b geomath.Vector2d, u float32) geomath.Vector2d {
	return a.Mul(1 - u).Add(b.Mul(u))
}

// forwardDiff returns P_{i+1}-P_i for i in [0, len(points)-2], the
// control points of the curve's hodograph (one degree lower).
func forwardDiff(points []geomath.Vector2d) []geomath.Vector2d {
	out := make([]geomath.Vector2d, len(points)-1)
	for i := range out {
		out[i] = points[i+1].Sub(points[i])
	}
	return out
}
