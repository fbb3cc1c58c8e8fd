package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wrenfield/trajcore/pkg/curve"
	"github.com/wrenfield/trajcore/pkg/drivemodel"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/path"
)

// straightPoint builds a PathPoint moving at unit speed along +X with no
// curvature and no heading change, the simplest bot-frame-equals-path-frame
// case for exercising the canonical transforms.
func straightPoint(positionDeriv, positionSecondDeriv geomath.Vector2d, heading, headingDeriv, headingSecondDeriv float32) path.PathPoint {
	return path.PathPoint{
		CurvePoint: curve.CurvePoint{
			Position:            geomath.Vector2d{X: 0, Y: 0},
			PositionDeriv:       positionDeriv,
			PositionSecondDeriv: positionSecondDeriv,
			TanAngle:            heading,
		},
		Heading:            heading,
		HeadingDeriv:       headingDeriv,
		HeadingSecondDeriv: headingSecondDeriv,
	}
}

func TestConstraintSetMaxVelocityIsComponentwiseMin(t *testing.T) {
	loose := Constraint{Velocity: func(path.PathPoint) float32 { return 10 }}
	tight := Constraint{Velocity: func(path.PathPoint) float32 { return 3 }}
	cs := NewConstraintSet(loose, tight)
	require.InDelta(t, 3, cs.MaxVelocity(path.PathPoint{}), 1e-6)
}

func TestConstraintSetMaxVelocityUnconstrainedWhenEmpty(t *testing.T) {
	cs := NewConstraintSet()
	require.True(t, cs.MaxVelocity(path.PathPoint{}) > 1e30)
}

func TestConstraintSetAccelRangeIntersects(t *testing.T) {
	a := Constraint{Acceleration: func(path.PathPoint, float32) geomath.Interval { return geomath.NewInterval(-2, 5) }}
	b := Constraint{Acceleration: func(path.PathPoint, float32) geomath.Interval { return geomath.NewInterval(-1, 1) }}
	cs := NewConstraintSet(a, b)
	iv := cs.AccelRange(path.PathPoint{}, 0)
	require.InDelta(t, -1, iv.Lo, 1e-6)
	require.InDelta(t, 1, iv.Hi, 1e-6)
}

func TestConstraintSetAccelRangeEmptyOnConflict(t *testing.T) {
	a := Constraint{Acceleration: func(path.PathPoint, float32) geomath.Interval { return geomath.NewInterval(1, 2) }}
	b := Constraint{Acceleration: func(path.PathPoint, float32) geomath.Interval { return geomath.NewInterval(-2, -1) }}
	cs := NewConstraintSet(a, b)
	require.True(t, cs.AccelRange(path.PathPoint{}, 0).IsEmpty())
}

func TestVelocityFromBotVelTransformUnitForwardMotion(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	f := VelocityFromBotVelTransform(d.MotorVelFromBotVel, []float32{200, 200})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	vmax := f(p)
	require.Greater(t, vmax, float32(0))
	require.False(t, vmax != vmax)
}

func TestAccelerationFromBotAccelTransformSymmetricBounds(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	f := AccelerationFromBotAccelTransform(d.MotorAccelFromBotAccel, []float32{100, 100}, nil)
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	iv := f(p, 0)
	require.False(t, iv.IsEmpty())
	require.Less(t, iv.Lo, float32(0))
	require.Greater(t, iv.Hi, float32(0))
}

func TestMaxMotorSpeedBoundsForwardVelocity(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	c := MaxMotorSpeed(d, []float32{100, 100})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	vmax := c.Velocity(p)
	require.Greater(t, vmax, float32(0))
}

func TestMaxWheelTangentialSpeedScalesByRadius(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	motorLimit := MaxMotorSpeed(d, []float32{100, 100})
	wheelLimit := MaxWheelTangentialSpeed(d, []float32{100, 100})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)

	vMotor := motorLimit.Velocity(p)
	vWheel := wheelLimit.Velocity(p)
	require.InDelta(t, vMotor/0.05, vWheel, 1e-3)
}

func TestMaxMotorAccelerationBounded(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	c := MaxMotorAcceleration(d, []float32{50, 50})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	iv := c.Acceleration(p, 0)
	require.False(t, iv.IsEmpty())
}

func TestMaxWheelTangentialAccelerationBounded(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3)
	c := MaxWheelTangentialAcceleration(d, []float32{5, 5})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	iv := c.Acceleration(p, 0)
	require.False(t, iv.IsEmpty())
}

func TestMaxMotorVoltageZeroVelocityMatchesAccelOnlyBound(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3).WithElectricalModels(drivemodel.UniformElectricalModels(2, drivemodel.MotorElectricalModel{
		Inertia:                 0.002,
		VoltsPerTorque:          10,
		VoltsPerAngularVelocity: 0.1,
	}))
	c := MaxMotorVoltage(d, []float32{12, 12})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	iv := c.Acceleration(p, 0)
	require.False(t, iv.IsEmpty())

	accelOnly := AccelerationFromBotAccelTransform(d.VoltsFromBotAccel(), []float32{12, 12}, nil)(p, 0)
	require.InDelta(t, accelOnly.Lo, iv.Lo, 1e-4)
	require.InDelta(t, accelOnly.Hi, iv.Hi, 1e-4)
}

func TestMaxMotorVoltageDampensAtNonzeroVelocity(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3).WithElectricalModels(drivemodel.UniformElectricalModels(2, drivemodel.MotorElectricalModel{
		Inertia:                 0.002,
		VoltsPerTorque:          10,
		VoltsPerAngularVelocity: 0.1,
	}))
	c := MaxMotorVoltage(d, []float32{12, 12})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)

	ivZero := c.Acceleration(p, 0)
	ivMoving := c.Acceleration(p, 5)
	require.Less(t, ivMoving.Hi, ivZero.Hi)
}

func TestMaxMotorTorqueConvertsToVoltageLimit(t *testing.T) {
	d := drivemodel.NewDifferentialDrive(0.05, 0.3).WithElectricalModels(drivemodel.UniformElectricalModels(2, drivemodel.MotorElectricalModel{
		Inertia:                 0.002,
		VoltsPerTorque:          10,
		VoltsPerAngularVelocity: 0.1,
	}))
	c := MaxMotorTorque(d, []float32{1.2, 1.2})
	p := straightPoint(geomath.Vector2d{X: 1, Y: 0}, geomath.Zero2d, 0, 0, 0)
	iv := c.Acceleration(p, 0)
	require.False(t, iv.IsEmpty())

	// 1.2 N*m at 10 V per N*m is a 12 V limit.
	voltage := MaxMotorVoltage(d, []float32{12, 12}).Acceleration(p, 0)
	require.InDelta(t, voltage.Lo, iv.Lo, 1e-3)
	require.InDelta(t, voltage.Hi, iv.Hi, 1e-3)
}
