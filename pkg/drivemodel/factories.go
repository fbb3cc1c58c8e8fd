package drivemodel

import (
	"github.com/chewxy/math32"
	"github.com/wrenfield/trajcore/pkg/mat"
)

// wheelRow returns the no-slip constraint row for a wheel at chassis
// position (x, y) whose rolling direction makes angle rollerAngle with
// the chassis X axis: motor angular velocity (or acceleration) =
// (vx*cos(rollerAngle) + vy*sin(rollerAngle) + omega*(x*sin(rollerAngle)
// - y*cos(rollerAngle))) / wheelRadius. A differential-drive wheel is
// the rollerAngle=0 case; a mecanum roller is the rollerAngle=±45°
// case; a swerve wheel is this formula evaluated at its current steer
// angle. Grounded on the no-slip constraint
// pkg/core/math/control/kinematics/wheels/internal/rigid.SolveTwist
// builds per-wheel, generalized here into an explicit matrix row
// instead of a per-call numeric solve.
func wheelRow(wheelRadius, x, y, rollerAngle float32) []float32 {
	c := math32.Cos(rollerAngle)
	s := math32.Sin(rollerAngle)
	return []float32{c / wheelRadius, s / wheelRadius, (x*s - y*c) / wheelRadius}
}

func buildMatrices(wheelRadius []float32, x, y, rollerAngle []float32) (mat.Matrix, mat.Matrix) {
	n := len(wheelRadius)
	m := mat.New(n, 3)
	for i := range wheelRadius {
		copy(m.Row(i), wheelRow(wheelRadius[i], x[i], y[i], rollerAngle[i]))
	}
	// Velocity and acceleration share the same linear map: both are the
	// same transform of the (vx, vy, omega) triple, differing only in
	// which derivative order it is applied to.
	return m, m.Clone()
}

// NewDifferentialDrive builds a two-motor differential-drive model:
// motors straddle the centerline at ±trackWidth/2 with rollers aligned
// with the direction of travel (rollerAngle=0), so neither wheel
// contributes a vy term — the platform cannot translate sideways.
// Grounded on pkg/core/math/control/kinematics/wheels/differential.
func NewDifferentialDrive(wheelRadius, trackWidth float32) DriveModel {
	half := trackWidth / 2
	radii := []float32{wheelRadius, wheelRadius}
	x := []float32{0, 0}
	y := []float32{half, -half}
	angle := []float32{0, 0}

	velM, accelM := buildMatrices(radii, x, y, angle)
	return DriveModel{
		NumMotors:              2,
		NumWheels:              2,
		WheelRadius:            radii,
		MotorVelFromBotVel:     velM,
		MotorAccelFromBotAccel: accelM,
	}
}

// mecanumPerturbedAngle is −44.99° instead of the nominal −45°, the
// documented workaround for a pseudoinverse that goes singular on a
// square (baseX == baseY) mecanum chassis at the exact angle. Ported
// verbatim per the design notes' resolution of this open question; the
// underlying rank deficiency is a real property of the model, not a bug.
const mecanumPerturbedAngle = -44.99 * math32.Pi / 180

// NewMecanumDrive builds a four-motor mecanum-drive model: front-left
// and back-right rollers at +45°, back-left at −45°, front-right at the
// perturbed −44.99°. Grounded on
// pkg/core/math/control/kinematics/wheels/mecanum, generalized from a
// single hardcoded 4x3 matrix to the per-wheel roller-angle
// construction shared with NewSwerveDrive.
func NewMecanumDrive(wheelRadius, baseX, baseY float32) DriveModel {
	halfX, halfY := baseX/2, baseY/2
	const deg45 = math32.Pi / 4

	radii := []float32{wheelRadius, wheelRadius, wheelRadius, wheelRadius}
	x := []float32{halfX, halfX, -halfX, -halfX}
	y := []float32{halfY, -halfY, halfY, -halfY}
	angle := []float32{deg45, mecanumPerturbedAngle, -deg45, deg45}

	velM, accelM := buildMatrices(radii, x, y, angle)
	return DriveModel{
		NumMotors:              4,
		NumWheels:              4,
		WheelRadius:            radii,
		MotorVelFromBotVel:     velM,
		MotorAccelFromBotAccel: accelM,
	}
}

// NewSwerveDrive builds a four-independently-steered-wheel model at a
// fixed steering configuration: steerAngles[i] is wheel i's current
// roller angle. Re-call with updated angles whenever the steering
// configuration changes; this DriveModel is a snapshot, not a function
// of time. Grounded on
// pkg/core/math/control/kinematics/wheels/steer4, generalized from its
// (v, omega)->(steerLeft, steerRight) Ackermann-style solve to the
// general per-wheel roller-angle matrix this package's constraint layer
// needs.
func NewSwerveDrive(wheelRadius, halfBase, halfTrack float32, steerAngles [4]float32) DriveModel {
	radii := []float32{wheelRadius, wheelRadius, wheelRadius, wheelRadius}
	x := []float32{halfBase, halfBase, -halfBase, -halfBase}
	y := []float32{halfTrack, -halfTrack, halfTrack, -halfTrack}
	angle := steerAngles[:]

	velM, accelM := buildMatrices(radii, x, y, angle)
	return DriveModel{
		NumMotors:              4,
		NumWheels:              4,
		WheelRadius:            radii,
		MotorVelFromBotVel:     velM,
		MotorAccelFromBotAccel: accelM,
	}
}
