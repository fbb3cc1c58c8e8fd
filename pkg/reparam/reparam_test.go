package reparam

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

func TestMappingLengthMatchesStraightLine(t *testing.T) {
	f := straightLine(2)
	m := Build(f, 256)
	require.InDelta(t, 2.0, m.Length(), 1e-2)
}

func TestMappingEndpointsExact(t *testing.T) {
	f := straightLine(5)
	m := Build(f, 128)
	require.InDelta(t, 0, m.TOfS(0), 1e-6)
	require.InDelta(t, 1, m.TOfS(m.Length()), 1e-4)
}

func TestMappingMonotone(t *testing.T) {
	f := straightLine(3)
	m := Build(f, 200)
	prev := float32(-1)
	for i := 0; i <= 10; i++ {
		s := float32(i) / 10 * m.Length()
		u := m.TOfS(s)
		require.GreaterOrEqual(t, u, prev)
		prev = u
	}
}

func TestStepperMatchesTOfS(t *testing.T) {
	f := straightLine(4)
	m := Build(f, 300)
	st := NewStepper(m)
	for i := 0; i <= 20; i++ {
		s := float32(i) / 20 * m.Length()
		require.InDelta(t, m.TOfS(s), st.StepTo(s), 1e-4)
	}
}

func TestQuinticReparamAgainstDirectCurve(t *testing.T) {
	// Control points (0,0),(1,0),(2,0),(2,1),(2,2),(3,2) per the spec's
	// worked example.
	q := spline.NewQuinticFromControlPoints(
		geomath.Vector2d{X: 0, Y: 0},
		geomath.Vector2d{X: 1, Y: 0},
		geomath.Vector2d{X: 2, Y: 0},
		geomath.Vector2d{X: 2, Y: 1},
		geomath.Vector2d{X: 2, Y: 2},
		geomath.Vector2d{X: 3, Y: 2},
	)
	m := Build(q, 2000)
	half := m.Length() / 2
	u := m.TOfS(half)
	got := q.Vec(u)

	// Reference via fine Simpson-ish trapezoidal integration directly.
	ref := simpsonHalfArcLengthPoint(q)
	require.InDelta(t, ref.X, got.X, 1e-3)
	require.InDelta(t, ref.Y, got.Y, 1e-3)
}

// simpsonHalfArcLengthPoint independently locates the point at half the
// curve's arc length using a much finer trapezoidal integration, as an
// independent reference for the coarser Build() under test.
func simpsonHalfArcLengthPoint(q spline.QuinticSpline) geomath.Vector2d {
	const n = 20000
	h := float32(1) / float32(n)
	var total float32
	prevSpeed := q.VecDeriv(0).Length()
	cum := make([]float32, n+1)
	for i := 1; i <= n; i++ {
		u := float32(i) * h
		speed := q.VecDeriv(u).Length()
		total += 0.5 * (prevSpeed + speed) * h
		cum[i] = total
		prevSpeed = speed
	}
	target := total / 2
	for i := 1; i <= n; i++ {
		if cum[i] >= target {
			u := float32(i) * h
			return q.Vec(u)
		}
	}
	return q.Vec(1)
}
