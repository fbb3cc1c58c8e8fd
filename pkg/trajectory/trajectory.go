// Package trajectory glues a Path and a MotionProfile together into a
// single time-indexed pose/velocity/acceleration stream: the final
// stitching layer spec.md §4.8 describes as "Trajectory".
package trajectory

import (
	"errors"
	"fmt"

	"github.com/wrenfield/trajcore/pkg/constraint"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/path"
	"github.com/wrenfield/trajcore/pkg/profile"
	"github.com/wrenfield/trajcore/pkg/scalar"
)

// ErrLengthMismatch reports that a Path and a MotionProfile were paired
// whose lengths disagree by more than the module's numerical tolerance;
// the invariant a Trajectory is built to uphold.
var ErrLengthMismatch = errors.New("trajectory: path length and profile distance disagree")

// PoseMotionState is the (pose, pose-derivative, pose-second-derivative)
// triple a controller samples at an instant, the time-domain
// specialization of spec.md §3's MotionState<T>.
type PoseMotionState struct {
	Pose            geomath.Pose2d
	PoseDeriv       geomath.Pose2d
	PoseSecondDeriv geomath.Pose2d
}

// Trajectory pairs a Path with a MotionProfile: sampling it at time t
// converts t->s via the profile, then s->pose via the path, combining
// the path's arc-length derivatives with the profile's velocity and
// acceleration via the chain rule.
type Trajectory struct {
	path    path.Path
	profile profile.MotionProfile
}

// New pairs path and prof, failing if their lengths disagree by more
// than scalar.Epsilon, the invariant spec.md §3 states for Trajectory.
func New(p path.Path, prof profile.MotionProfile) (Trajectory, error) {
	if d := p.Length() - prof.Distance(); d > scalar.Epsilon || d < -scalar.Epsilon {
		return Trajectory{}, fmt.Errorf("%w: path length %g, profile distance %g", ErrLengthMismatch, p.Length(), prof.Distance())
	}
	return Trajectory{path: p, profile: prof}, nil
}

// Duration returns the trajectory's total traversal time.
func (t Trajectory) Duration() float32 { return t.profile.Duration() }

// Path returns the trajectory's underlying path.
func (t Trajectory) Path() path.Path { return t.path }

// Profile returns the trajectory's underlying motion profile.
func (t Trajectory) Profile() profile.MotionProfile { return t.profile }

// AtTime returns the pose, pose velocity, and pose acceleration at time
// t, per spec.md §4.8: poseDeriv·v for velocity, and
// poseSecondDeriv·v² + poseDeriv·a for acceleration (the chain rule
// expansion of d(pose)/dt and d²(pose)/dt² through the arc-length
// parameterization).
func (t Trajectory) AtTime(tm float32) PoseMotionState {
	st := t.profile.AtTime(tm)
	pp := t.path.PointAt(st.S)
	return stateAt(pp, st)
}

// Stepper pairs a path.Stepper and a profile.Stepper, advancing both
// monotonically from a single time cursor: callers must supply
// non-decreasing t, the same monotone-advance contract both underlying
// steppers already uphold.
type Stepper struct {
	pathSt path.Stepper
	profSt *profile.Stepper
}

// Stepper returns a monotone accessor over this trajectory.
func (t Trajectory) Stepper() *Stepper {
	return &Stepper{pathSt: t.path.Stepper(), profSt: t.profile.Stepper()}
}

// StepTo advances the cursor to time t and returns the trajectory's
// state there.
func (s *Stepper) StepTo(t float32) PoseMotionState {
	ps := s.profSt.StepTo(t)
	pp := s.pathSt.StepTo(ps.S)
	return stateAt(pp, ps)
}

func stateAt(pp path.PathPoint, st profile.State) PoseMotionState {
	deriv := pp.PoseDeriv()
	secondDeriv := pp.PoseSecondDeriv()
	return PoseMotionState{
		Pose:            pp.Pose(),
		PoseDeriv:       scalePose(deriv, st.V),
		PoseSecondDeriv: addPose(scalePose(secondDeriv, st.V*st.V), scalePose(deriv, st.A)),
	}
}

func scalePose(p geomath.Pose2d, c float32) geomath.Pose2d {
	return geomath.Pose2d{Position: p.Position.Mul(c), Heading: p.Heading * c}
}

func addPose(a, b geomath.Pose2d) geomath.Pose2d {
	return geomath.Pose2d{Position: a.Position.Add(b.Position), Heading: a.Heading + b.Heading}
}

// pathConstrainer adapts a path.Path plus a constraint.ConstraintSet
// into the profile.Constrainer the generator needs, the
// "TrajectoryConstraint adapter" spec.md §6 names explicitly.
type pathConstrainer struct {
	path path.Path
	set  constraint.ConstraintSet
}

func (c pathConstrainer) MaxVelocity(s float32) float32 {
	return c.set.MaxVelocity(c.path.PointAt(s))
}

func (c pathConstrainer) AccelRange(s float32, v float32) geomath.Interval {
	return c.set.AccelRange(c.path.PointAt(s), v)
}

// Generate builds a TrajectoryConstraint adapter over (p, cs) and
// delegates to profile.GenerateDynamicProfile, then pairs the result
// back with p, per spec.md §6's generateTrajectory surface.
//
// segmentSize <= 0 uses profile.DefaultSegmentSize.
func Generate(p path.Path, cs constraint.ConstraintSet, targetStartVel, targetEndVel, segmentSize float32) (Trajectory, error) {
	prof, err := profile.GenerateDynamicProfile(pathConstrainer{path: p, set: cs}, p.Length(), targetStartVel, targetEndVel, segmentSize, profile.DefaultMaxVelSearchTolerance)
	if err != nil {
		return Trajectory{}, err
	}
	return New(p, prof)
}
