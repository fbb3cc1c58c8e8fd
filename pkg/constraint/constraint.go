// Package constraint evaluates drive-model physics into the v_max(point)
// and a_range(point, v) queries the motion-profile generator consumes.
// Rather than runtime-polymorphic Constraint implementations, each
// Constraint is a small struct of two optional function fields — the
// tagged-variant-with-nilable-cases approach spec's design notes call
// for, keeping the hot path allocation-free.
package constraint

import (
	"github.com/chewxy/math32"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/path"
)

// VelocityConstraintFunc bounds |ds/dt| at a path point.
type VelocityConstraintFunc func(p path.PathPoint) float32

// AccelerationConstraintFunc returns the admissible interval of ds²/dt²
// at a path point, given the current velocity v.
type AccelerationConstraintFunc func(p path.PathPoint, v float32) geomath.Interval

// Constraint is velocity-only, acceleration-only, or both; whichever
// field is nil does not participate in ConstraintSet aggregation.
type Constraint struct {
	Velocity     VelocityConstraintFunc
	Acceleration AccelerationConstraintFunc
}

// ConstraintSet aggregates constraints into a single PointConstraint via
// componentwise min (velocity) and componentwise intersection
// (acceleration).
type ConstraintSet struct {
	constraints []Constraint
}

// NewConstraintSet bundles constraints.
func NewConstraintSet(constraints ...Constraint) ConstraintSet {
	return ConstraintSet{constraints: constraints}
}

// MaxVelocity returns the tightest velocity bound across every
// velocity-bearing constraint in the set. An empty set is unconstrained
// (returns +Inf); callers are expected to combine this with an external
// hard ceiling (MAX_VEL) as the profile generator does.
func (cs ConstraintSet) MaxVelocity(p path.PathPoint) float32 {
	vmax := math32.Inf(1)
	for _, c := range cs.constraints {
		if c.Velocity == nil {
			continue
		}
		if v := c.Velocity(p); v < vmax {
			vmax = v
		}
	}
	return vmax
}

// AccelRange intersects every acceleration-bearing constraint's
// admissible interval at (p, v).
func (cs ConstraintSet) AccelRange(p path.PathPoint, v float32) geomath.Interval {
	iv := geomath.RealInterval
	for _, c := range cs.constraints {
		if c.Acceleration == nil {
			continue
		}
		iv = iv.Intersect(c.Acceleration(p, v))
		if iv.IsEmpty() {
			return iv
		}
	}
	return iv
}
