package drivemodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestDifferentialDriveStraightLine(t *testing.T) {
	d := NewDifferentialDrive(0.05, 0.3)
	// Pure forward motion: both wheels spin at the same rate, no omega
	// contribution.
	motor := d.MotorVelFromBotVel.MulVec([]float32{1, 0, 0})
	require.InDelta(t, motor[0], motor[1], tol)
	require.Greater(t, motor[0], float32(0))
}

func TestDifferentialDrivePureRotationOpposesWheels(t *testing.T) {
	d := NewDifferentialDrive(0.05, 0.3)
	motor := d.MotorVelFromBotVel.MulVec([]float32{0, 0, 1})
	require.InDelta(t, motor[0], -motor[1], tol)
}

func TestMecanumDriveStrafeIsFeasible(t *testing.T) {
	d := NewMecanumDrive(0.05, 0.3, 0.3)
	require.Equal(t, 4, d.NumMotors)
	// Pure sideways motion should drive a nonzero, finite motor command
	// on every wheel (the defining feature of a holonomic drive).
	motor := d.MotorVelFromBotVel.MulVec([]float32{0, 1, 0})
	for _, m := range motor {
		require.False(t, m != m) // not NaN
	}
}

func TestMecanumPerturbedAngleKeepsPseudoInverseWellConditioned(t *testing.T) {
	d := NewMecanumDrive(0.05, 0.3, 0.3)
	inv, err := d.MotorVelFromBotVel.PseudoInverse()
	require.NoError(t, err)
	require.Equal(t, 3, inv.Rows)
	require.Equal(t, 4, inv.Cols)
}

func TestSwerveDriveZeroAnglesMatchesDifferentialShape(t *testing.T) {
	d := NewSwerveDrive(0.05, 0.2, 0.3, [4]float32{0, 0, 0, 0})
	require.Equal(t, 4, d.NumMotors)
	motor := d.MotorVelFromBotVel.MulVec([]float32{1, 0, 0})
	for _, m := range motor {
		require.InDelta(t, 1.0/0.05, m, tol)
	}
}

func TestElectricalModelVoltsFromBotAccel(t *testing.T) {
	d := NewDifferentialDrive(0.05, 0.3).WithElectricalModels(UniformElectricalModels(2, MotorElectricalModel{
		Inertia:                 0.002,
		VoltsPerTorque:          10,
		VoltsPerAngularVelocity: 0.1,
	}))

	v := d.VoltsFromBotAccel()
	require.Equal(t, 2, v.Rows)
	require.Equal(t, 3, v.Cols)

	back, err := d.BotAccelFromBotVel()
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows)
	require.Equal(t, 3, back.Cols)
}

func TestMotorElectricalModelTorquePerVoltIsReciprocal(t *testing.T) {
	m := MotorElectricalModel{VoltsPerTorque: 4}
	require.InDelta(t, 0.25, m.TorquePerVolt(), 1e-9)
}
