package drivemodel

import "github.com/wrenfield/trajcore/pkg/mat"

// MotorElectricalModel is a simple linear motor voltage model: voltage
// needed for a unit angular acceleration (via torque and the motor's
// effective inertia) plus a back-EMF term proportional to angular
// velocity. There is no teacher precedent for this type; it follows the
// Config-driven linear-gain style of
// pkg/core/math/control/kinematics/rigidbody, substituting electrical
// constants for control gains.
type MotorElectricalModel struct {
	// Inertia is the motor+wheel effective moment of inertia (kg*m^2 at
	// the motor shaft).
	Inertia float32
	// VoltsPerTorque (volts per N*m at the motor shaft, combining winding
	// resistance and the torque constant) is the quantity the
	// MaxMotorTorque constraint inverts via torquePerVolt = 1/voltsPerTorque.
	VoltsPerTorque float32
	// VoltsPerAngularVelocity is kv, the back-EMF constant (V*s/rad).
	VoltsPerAngularVelocity float32
}

// TorquePerVolt returns 1/VoltsPerTorque, the conversion MaxMotorTorque
// uses to express a torque limit as an equivalent voltage limit.
func (m MotorElectricalModel) TorquePerVolt() float32 {
	return 1 / m.VoltsPerTorque
}

// voltsPerAngularAccel returns the volts needed per unit motor angular
// acceleration: torque = inertia*accel, volts = torque*voltsPerTorque.
func (m MotorElectricalModel) voltsPerAngularAccel() float32 {
	return m.Inertia * m.VoltsPerTorque
}

func buildElectricalMatrices(models []MotorElectricalModel) (voltsFromAccel, voltsFromVel mat.Matrix) {
	n := len(models)
	voltsFromAccel = mat.New(n, n)
	voltsFromVel = mat.New(n, n)
	for i, m := range models {
		voltsFromAccel.Set(i, i, m.voltsPerAngularAccel())
		voltsFromVel.Set(i, i, m.VoltsPerAngularVelocity)
	}
	return voltsFromAccel, voltsFromVel
}

// UniformElectricalModels returns n copies of the same electrical model,
// the common case of identical motors on every wheel.
func UniformElectricalModels(n int, m MotorElectricalModel) []MotorElectricalModel {
	models := make([]MotorElectricalModel, n)
	for i := range models {
		models[i] = m
	}
	return models
}
