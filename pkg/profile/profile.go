// Package profile generates and queries piecewise-constant-acceleration
// motion profiles: velocity-vs-distance schedules that respect a
// pointwise velocity bound and acceleration interval at every point
// along a path, generalizing the teacher's closed-loop
// pkg/core/math/control/motion/planner.Motion into an open-loop
// forward/backward dynamic-programming profile generator.
package profile

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/wrenfield/trajcore/pkg/corelog"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/scalar"
)

// Numerical defaults per spec's external-interface section.
const (
	// MaxVel is the hard velocity ceiling no generated profile may
	// exceed, applied on top of whatever a Constrainer reports.
	MaxVel = 1e4

	DefaultSegmentSize           = 0.01
	DefaultMaxVelSearchTolerance = 0.01
)

// ErrInvalidParameters reports a malformed generation request: a
// non-positive distance, a negative velocity target, a segmentSize
// (after a non-positive one is replaced by the default) larger than
// distance, or a negative maxVelocity reported by the Constrainer.
var ErrInvalidParameters = errors.New("profile: invalid parameters")

// ErrUnsatisfiable reports that the generator could not find any
// admissible acceleration at some point even at v=0; generation aborts
// rather than returning a partial profile.
var ErrUnsatisfiable = errors.New("profile: unsatisfiable constraints")

// Segment is one piecewise-constant-acceleration leg of a MotionProfile:
// starting at distance S0 with velocity V0, holding acceleration A for
// duration Dt.
type Segment struct {
	S0, V0, A, Dt float32
}

// MotionProfile is a contiguous sequence of Segments covering [0, L].
type MotionProfile struct {
	segments []Segment
	times    []float32 // cumulative duration at the start of each segment, len(segments)+1
	distance float32
	duration float32
}

// Distance returns the total arc length the profile covers.
func (m MotionProfile) Distance() float32 { return m.distance }

// Duration returns the total time the profile takes to traverse.
func (m MotionProfile) Duration() float32 { return m.duration }

// Segments returns the profile's segments in order.
func (m MotionProfile) Segments() []Segment { return m.segments }

// State is a snapshot of a profile's scalar path coordinate (distance,
// velocity, acceleration) at some instant, the MotionState<T> of
// spec.md §3 specialized to a 1-D path coordinate.
type State struct {
	S, V, A float32
}

// Constrainer answers velocity and acceleration bounds at an arbitrary
// arc length, the input the generator needs. path.Path plus a
// constraint.ConstraintSet satisfy this shape via the adapter in
// pkg/trajectory; Constrainer is kept decoupled from
// pkg/path so pkg/profile has no import-cycle dependency on it.
type Constrainer interface {
	MaxVelocity(s float32) float32
	AccelRange(s float32, v float32) geomath.Interval
}

// GenerateDynamicProfile computes the fastest feasible v(s) schedule
// over [0, distance] given constrainer's pointwise velocity bound and
// state-dependent acceleration interval, per spec.md §4.7: discretize
// into segments of roughly segmentSize length, sweep a forward pass
// (accelerating as hard as admissible) and a backward pass (the
// deceleration-feasibility mirror), then emit the piecewise-quadratic
// segment list.
//
// segmentSize <= 0 uses DefaultSegmentSize; maxVelSearchTolerance <= 0
// uses DefaultMaxVelSearchTolerance.
func GenerateDynamicProfile(c Constrainer, distance, targetStartVel, targetEndVel, segmentSize, maxVelSearchTolerance float32) (MotionProfile, error) {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	if maxVelSearchTolerance <= 0 {
		maxVelSearchTolerance = DefaultMaxVelSearchTolerance
	}
	if err := validateParameters(distance, targetStartVel, targetEndVel, segmentSize); err != nil {
		return MotionProfile{}, err
	}

	n := int(math32.Ceil(distance / segmentSize))
	s := make([]float32, n+1)
	for i := 0; i <= n; i++ {
		s[i] = float32(i) * distance / float32(n)
	}
	s[n] = distance

	vmax := make([]float32, n+1)
	for i := 0; i <= n; i++ {
		v := c.MaxVelocity(s[i])
		if v < 0 {
			return MotionProfile{}, fmt.Errorf("%w: constrainer returned negative maxVelocity %g at s=%g", ErrInvalidParameters, v, s[i])
		}
		vmax[i] = math32.Min(v, MaxVel)
	}
	vmax[0] = math32.Min(vmax[0], targetStartVel)
	vmax[n] = math32.Min(vmax[n], targetEndVel)

	tol := math32.Max(maxVelSearchTolerance, scalar.Epsilon)
	if err := sweep(c, s, vmax, tol, false); err != nil {
		return MotionProfile{}, err
	}
	if err := sweep(c, s, vmax, tol, true); err != nil {
		return MotionProfile{}, err
	}

	segments := make([]Segment, n)
	times := make([]float32, n+1)
	var duration float32
	for i := 0; i < n; i++ {
		ds := s[i+1] - s[i]
		v0, v1 := vmax[i], vmax[i+1]
		a := (v1*v1 - v0*v0) / (2 * ds)

		var dt float32
		if v0+v1 < scalar.Epsilon {
			dt = 0 // explicit zero-length rather than a 1/epsilon blowup
		} else {
			dt = 2 * ds / (v0 + v1)
		}

		segments[i] = Segment{S0: s[i], V0: v0, A: a, Dt: dt}
		duration += dt
		times[i+1] = duration
	}

	return MotionProfile{segments: segments, times: times, distance: distance, duration: duration}, nil
}

func validateParameters(distance, targetStartVel, targetEndVel, segmentSize float32) error {
	switch {
	case distance <= 0:
		return fmt.Errorf("%w: distance must be positive, got %g", ErrInvalidParameters, distance)
	case targetStartVel < 0:
		return fmt.Errorf("%w: targetStartVel must be >= 0, got %g", ErrInvalidParameters, targetStartVel)
	case targetEndVel < 0:
		return fmt.Errorf("%w: targetEndVel must be >= 0, got %g", ErrInvalidParameters, targetEndVel)
	case segmentSize > distance:
		return fmt.Errorf("%w: segmentSize %g exceeds distance %g", ErrInvalidParameters, segmentSize, distance)
	}
	return nil
}

// sweep performs one forward (backward=false) or backward (backward=true)
// dynamic-programming pass over the discretized points, per spec.md
// §4.7 steps 3-4. The forward pass walks s[0]->s[n], using accelRange's
// upper bound as the admissible a_max at each point; the backward pass
// walks s[n]->s[0] over the same point array, using accelRange's lower
// bound negated as the effective a_max, the deceleration-feasibility
// mirror of the forward pass. Both directions share the same binary
// search fallback when the current endpoint's vmax is infeasible.
func sweep(c Constrainer, s, vmax []float32, tol float32, backward bool) error {
	n := len(s) - 1
	for k := 0; k < n; k++ {
		i, j := k, k+1
		if backward {
			i, j = n-k, n-k-1
		}
		ds := math32.Abs(s[j] - s[i])

		tryAccel := func(v float32) (float32, bool) {
			ar := c.AccelRange(s[i], v)
			if ar.IsEmpty() {
				return 0, false
			}
			aMax := ar.Hi
			if backward {
				aMax = -ar.Lo
			}
			aMin := -v * v / (2 * ds)
			if aMax <= aMin {
				return 0, false
			}
			return aMax, true
		}

		v0 := vmax[i]
		aMax, ok := tryAccel(v0)
		if !ok {
			v0, aMax, ok = searchFeasibleVel(v0, tol, tryAccel)
			if !ok {
				return fmt.Errorf("%w: at segment %d (s=%g), no admissible acceleration even at v=0", ErrUnsatisfiable, i, s[i])
			}
			corelog.Log.Debug().Int("segment", i).Float64("reducedVel", float64(v0)).Msg("profile: binary search lowered velocity to restore feasibility")
			vmax[i] = v0
		}

		v1 := math32.Sqrt(v0*v0 + 2*aMax*ds)
		if v1 < vmax[j] {
			vmax[j] = v1
		}
	}
	return nil
}

// searchFeasibleVel lowers v0 by a monotone extending-down binary
// search (initial step v0/2, halving) until tryAccel reports a feasible
// a_max, to tolerance tol, per spec.md §4.7 step 3. Returns ok=false
// only when even v=0 is infeasible, the fatal "unsatisfiable at zero
// velocity" case.
func searchFeasibleVel(v0, tol float32, tryAccel func(float32) (float32, bool)) (float32, float32, bool) {
	v := v0
	step := v0 / 2
	for step >= tol {
		if a, ok := tryAccel(v); ok {
			return v, a, true
		}
		v -= step
		if v < 0 {
			v = 0
		}
		step /= 2
	}
	if a, ok := tryAccel(v); ok {
		return v, a, true
	}
	if a, ok := tryAccel(0); ok {
		return 0, a, true
	}
	return 0, 0, false
}

// AtTime returns the profile's (s, v, a) state at time t, clamped to
// [0, Duration()]. Segment lookup is a binary search over cumulative
// segment durations; callers making repeated monotone-time queries
// should use Stepper instead for O(1)-amortized lookup.
func (m MotionProfile) AtTime(t float32) State {
	k := m.segmentIndex(t)
	return m.stateInSegment(k, t)
}

func (m MotionProfile) segmentIndex(t float32) int {
	n := len(m.segments)
	if n == 0 {
		return 0
	}
	t = scalar.Clamp(t, 0, m.duration)
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.times[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (m MotionProfile) stateInSegment(k int, t float32) State {
	if len(m.segments) == 0 {
		return State{}
	}
	t = scalar.Clamp(t, 0, m.duration)
	seg := m.segments[k]
	tau := t - m.times[k]
	return State{
		S: seg.S0 + seg.V0*tau + 0.5*seg.A*tau*tau,
		V: seg.V0 + seg.A*tau,
		A: seg.A,
	}
}

// Stepper is a monotone-advance accessor over a MotionProfile: repeated
// StepTo calls must arrive with non-decreasing t. It keeps a cursor
// segment index so sequential sampling is O(1) amortized, falling back
// to a fresh re-search on a regression.
type Stepper struct {
	profile MotionProfile
	cursor  int
	lastT   float32
	started bool
}

// Stepper returns a monotone accessor over this profile.
func (m MotionProfile) Stepper() *Stepper {
	return &Stepper{profile: m}
}

// StepTo advances the cursor to time t and returns the profile's state
// there. t must be non-decreasing across calls on the same Stepper; a
// regression resets the cursor and re-searches rather than panicking.
func (st *Stepper) StepTo(t float32) State {
	n := len(st.profile.segments)
	if n == 0 {
		return State{}
	}
	t = scalar.Clamp(t, 0, st.profile.duration)
	if st.started && t < st.lastT {
		st.cursor = 0
	}
	st.started = true
	st.lastT = t

	for st.cursor < n-1 && st.profile.times[st.cursor+1] <= t {
		st.cursor++
	}
	return st.profile.stateInSegment(st.cursor, t)
}
