package constraint

import (
	"github.com/wrenfield/trajcore/pkg/drivemodel"
	"github.com/wrenfield/trajcore/pkg/mat"
	"github.com/wrenfield/trajcore/pkg/path"
)

// MaxMotorSpeed bounds each motor's angular velocity.
func MaxMotorSpeed(d drivemodel.DriveModel, maxOmega []float32) Constraint {
	return Constraint{Velocity: VelocityFromBotVelTransform(d.MotorVelFromBotVel, maxOmega)}
}

// MaxWheelTangentialSpeed bounds each wheel's tangential (linear) speed,
// the motor constraint scaled by wheel radius.
func MaxWheelTangentialSpeed(d drivemodel.DriveModel, maxSpeed []float32) Constraint {
	return Constraint{Velocity: VelocityFromBotVelTransform(scaleRowsByRadius(d), maxSpeed)}
}

// MaxMotorAcceleration bounds each motor's angular acceleration.
func MaxMotorAcceleration(d drivemodel.DriveModel, maxAlpha []float32) Constraint {
	return Constraint{Acceleration: AccelerationFromBotAccelTransform(d.MotorAccelFromBotAccel, maxAlpha, nil)}
}

// MaxWheelTangentialAcceleration bounds each wheel's tangential
// acceleration.
func MaxWheelTangentialAcceleration(d drivemodel.DriveModel, maxAccel []float32) Constraint {
	m := mat.New(d.MotorAccelFromBotAccel.Rows, d.MotorAccelFromBotAccel.Cols)
	for r := 0; r < m.Rows; r++ {
		copy(m.Row(r), d.MotorAccelFromBotAccel.Row(r))
		for c := 0; c < m.Cols; c++ {
			m.Set(r, c, m.At(r, c)*d.WheelRadius[r])
		}
	}
	return Constraint{Acceleration: AccelerationFromBotAccelTransform(m, maxAccel, nil)}
}

func scaleRowsByRadius(d drivemodel.DriveModel) mat.Matrix {
	m := mat.New(d.MotorVelFromBotVel.Rows, d.MotorVelFromBotVel.Cols)
	for r := 0; r < m.Rows; r++ {
		copy(m.Row(r), d.MotorVelFromBotVel.Row(r))
		for c := 0; c < m.Cols; c++ {
			m.Set(r, c, m.At(r, c)*d.WheelRadius[r])
		}
	}
	return m
}

// MaxMotorVoltage bounds each motor's supply voltage. The addend term
// accounts for the back-EMF voltage the motor's own velocity induces,
// plus constant-direction friction: volts = voltsFromMotorAccel·accel +
// voltsFromMotorVel·vel + voltsForMotorFriction·sign(vel), matching
// the full linear voltage model in pkg/drivemodel rather than
// re-deriving a separate motorAccelFromMotorVel matrix.
func MaxMotorVoltage(d drivemodel.DriveModel, maxVolts []float32) Constraint {
	addend := func(p path.PathPoint, v float32) []float32 {
		r := botFrameTriple(p.PositionDeriv, p.HeadingDeriv, p.Heading)
		motorVel := d.MotorVelFromBotVel.MulVec(scaleVec(r, v))
		backEMF := d.VoltsFromMotorVel.MulVec(motorVel)

		out := make([]float32, len(backEMF))
		for i := range out {
			out[i] = backEMF[i]
			if d.VoltsForMotorFriction != nil {
				out[i] += d.VoltsForMotorFriction[i] * sign(motorVel[i])
			}
		}
		return out
	}
	return Constraint{Acceleration: AccelerationFromBotAccelTransform(d.VoltsFromBotAccel(), maxVolts, addend)}
}

// MaxMotorTorque bounds each motor's output torque, converted to an
// equivalent voltage limit via voltsPerTorque (torque-per-volt =
// 1/voltsPerTorque) and delegated to MaxMotorVoltage. This resolves the
// commented-out constraint by analogy to MaxMotorVoltage, per the design
// notes' suggested resolution.
func MaxMotorTorque(d drivemodel.DriveModel, maxTorque []float32) Constraint {
	maxVolts := make([]float32, len(maxTorque))
	for i, t := range maxTorque {
		maxVolts[i] = t * d.ElectricalModels[i].VoltsPerTorque
	}
	return MaxMotorVoltage(d, maxVolts)
}

func scaleVec(v []float32, c float32) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * c
	}
	return out
}

func sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
