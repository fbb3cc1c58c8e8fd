package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/spline"
)

func straightLine(length float32) spline.QuinticSpline {
	return spline.NewQuinticFromEndpoints(
		geomath.Vector2d{X: 0, Y: 0}, geomath.Vector2d{X: length, Y: 0}, geomath.Zero2d,
		geomath.Vector2d{X: length, Y: 0}, geomath.Vector2d{X: length, Y: 0}, geomath.Zero2d,
	)
}

func TestCurvePointAtEndpointsOfStraightLine(t *testing.T) {
	c := NewReparamCurve(straightLine(4), 256)
	require.InDelta(t, 4.0, c.Length(), 1e-2)

	start := c.PointAt(0)
	require.InDelta(t, 0, start.Position.X, 1e-3)
	require.InDelta(t, 1, start.PositionDeriv.X, 1e-3)
	require.InDelta(t, 0, start.TanAngleDeriv, 1e-3)

	end := c.PointAt(c.Length())
	require.InDelta(t, 4, end.Position.X, 1e-2)
	require.InDelta(t, 1, end.PositionDeriv.X, 1e-3)
}

func TestCurveStepperMatchesPointAt(t *testing.T) {
	c := NewReparamCurve(straightLine(3), 300)
	st := c.Stepper()
	for i := 0; i <= 10; i++ {
		s := float32(i) / 10 * c.Length()
		want := c.PointAt(s)
		got := st.StepTo(s)
		require.InDelta(t, want.Position.X, got.Position.X, 1e-3)
		require.InDelta(t, want.Position.Y, got.Position.Y, 1e-3)
	}
}

func TestCurveQuarterCircleCurvature(t *testing.T) {
	// A quintic approximating a quarter circle of radius 2 centered at
	// the origin, sweeping from (2,0) to (0,2). Curvature should be
	// close to 1/radius = 0.5 away from the endpoints. Over u in [0,1]
	// the circle's speed is r*pi/2 and its centripetal acceleration is
	// r*(pi/2)^2, so those are the endpoint derivatives.
	r := float32(2)
	const halfPi = float32(1.5707964)
	sp := r * halfPi
	acc := r * halfPi * halfPi
	q := spline.NewQuinticFromEndpoints(
		geomath.Vector2d{X: r, Y: 0}, geomath.Vector2d{X: 0, Y: sp},
		geomath.Vector2d{X: -acc, Y: 0},
		geomath.Vector2d{X: 0, Y: r}, geomath.Vector2d{X: -sp, Y: 0},
		geomath.Vector2d{X: 0, Y: -acc},
	)
	c := NewReparamCurve(q, 512)
	mid := c.PointAt(c.Length() / 2)
	require.InDelta(t, 1/r, mid.TanAngleDeriv, 0.05)
}

func TestCurveReversedNegatesFirstDerivatives(t *testing.T) {
	c := NewReparamCurve(straightLine(5), 256)
	r := c.Reversed()

	require.InDelta(t, c.Length(), r.Length(), 1e-4)

	base := c.PointAt(1.5)
	rev := r.PointAt(r.Length() - 1.5)

	require.InDelta(t, base.Position.X, rev.Position.X, 1e-3)
	require.InDelta(t, base.Position.Y, rev.Position.Y, 1e-3)
	require.InDelta(t, -base.PositionDeriv.X, rev.PositionDeriv.X, 1e-3)
	require.InDelta(t, -base.PositionDeriv.Y, rev.PositionDeriv.Y, 1e-3)
	require.InDelta(t, -base.TanAngleDeriv, rev.TanAngleDeriv, 1e-3)
	require.InDelta(t, base.PositionSecondDeriv.X, rev.PositionSecondDeriv.X, 1e-3)
	require.InDelta(t, base.PositionSecondDeriv.Y, rev.PositionSecondDeriv.Y, 1e-3)
	require.InDelta(t, base.TanAngle, rev.TanAngle, 1e-3)
}

func TestCurveDoubleReversalCollapsesStructurally(t *testing.T) {
	c := NewReparamCurve(straightLine(2), 128)
	r := c.Reversed()
	rr := r.Reversed()

	// Reversed(Reversed(x)) must be the original curve value, not merely
	// an equivalent one: the wrapper collapses rather than nesting.
	_, ok := rr.(ReparamCurve)
	require.True(t, ok)
}

func TestCurveReversedStepperMatchesPointAt(t *testing.T) {
	c := NewReparamCurve(straightLine(6), 256)
	r := c.Reversed()
	st := r.Stepper()
	for i := 0; i <= 6; i++ {
		s := float32(i) / 6 * r.Length()
		want := r.PointAt(s)
		got := st.StepTo(s)
		require.InDelta(t, want.Position.X, got.Position.X, 1e-3)
		require.InDelta(t, want.PositionDeriv.X, got.PositionDeriv.X, 1e-3)
	}
}
