// Package drivemodel builds the matrices relating motor, wheel, and bot
// (chassis) velocities, accelerations, and motor voltages that the
// constraint library queries. It generalizes the teacher's per-platform
// kinematics packages (pkg/core/math/control/kinematics/wheels/{differential,mecanum,steer4})
// from a pair of hardcoded Forward/Inverse kinematic functions into the
// matrix-algebra bundle the constraint layer needs to compose.
package drivemodel

import "github.com/wrenfield/trajcore/pkg/mat"

// DriveModel bundles the matrices a drive platform exposes to the
// constraint library: per-motor velocity and acceleration as linear
// functions of bot velocity/acceleration (vx, vy, omega), and per-motor
// voltage as a linear function of motor acceleration and velocity.
type DriveModel struct {
	NumMotors int
	NumWheels int

	// WheelRadius holds one radius per wheel, used to convert a motor's
	// angular rate/acceleration into a wheel tangential speed/acceleration
	// (wheel quantity = radius * motor quantity).
	WheelRadius []float32

	MotorVelFromBotVel     mat.Matrix // n x 3
	MotorAccelFromBotAccel mat.Matrix // n x 3

	VoltsFromMotorAccel mat.Matrix // n x n, zero value until WithElectricalModels
	VoltsFromMotorVel   mat.Matrix // n x n, zero value until WithElectricalModels

	// ElectricalModels is kept alongside the derived matrices so
	// constraints (MaxMotorTorque) can recover per-motor voltsPerTorque
	// without re-deriving it from the matrices.
	ElectricalModels []MotorElectricalModel

	// MotorAccelForMotorFriction and VoltsForMotorFriction are optional
	// constant-direction friction terms (n x 1, stored as a flat slice);
	// nil when friction is not modeled.
	MotorAccelForMotorFriction []float32
	VoltsForMotorFriction      []float32
}

// WithElectricalModels attaches a voltage model to each motor, producing
// the diagonal VoltsFromMotorAccel/VoltsFromMotorVel matrices. len(models)
// must equal NumMotors.
func (d DriveModel) WithElectricalModels(models []MotorElectricalModel) DriveModel {
	d.VoltsFromMotorAccel, d.VoltsFromMotorVel = buildElectricalMatrices(models)
	d.ElectricalModels = models
	return d
}

// WithFriction attaches constant-direction friction terms. Both slices
// must have length NumMotors.
func (d DriveModel) WithFriction(motorAccelForFriction, voltsForFriction []float32) DriveModel {
	d.MotorAccelForMotorFriction = motorAccelForFriction
	d.VoltsForMotorFriction = voltsForFriction
	return d
}

// VoltsFromBotAccel composes voltsFromMotorAccel * motorAccelFromBotAccel,
// the per-motor voltage required for a given bot acceleration ignoring
// back-EMF and friction, per spec's composition identity.
func (d DriveModel) VoltsFromBotAccel() mat.Matrix {
	return d.VoltsFromMotorAccel.Mul(d.MotorAccelFromBotAccel)
}

// VoltsFromBotVel composes voltsFromMotorVel * motorVelFromBotVel, the
// back-EMF voltage contribution of a given bot velocity.
func (d DriveModel) VoltsFromBotVel() mat.Matrix {
	return d.VoltsFromMotorVel.Mul(d.MotorVelFromBotVel)
}

// BotAccelFromVolts is the pseudo-inverse of VoltsFromBotAccel: the bot
// acceleration a given motor voltage vector would produce, used to
// derive the back-EMF damping term below.
func (d DriveModel) BotAccelFromVolts() (mat.Matrix, error) {
	return d.VoltsFromBotAccel().PseudoInverse()
}

// BotAccelFromBotVel returns −botAccelFromVolts·voltsFromBotVel, the
// back-EMF damping a bot velocity induces on its own acceleration.
func (d DriveModel) BotAccelFromBotVel() (mat.Matrix, error) {
	bfv, err := d.BotAccelFromVolts()
	if err != nil {
		return mat.Matrix{}, err
	}
	return bfv.Mul(d.VoltsFromBotVel()).Scale(-1), nil
}
