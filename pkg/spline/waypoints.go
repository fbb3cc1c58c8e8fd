package spline

import "github.com/wrenfield/trajcore/pkg/geomath"

// ChainFromWaypoints builds one quintic segment per consecutive pair of
// waypoints, with velocity and acceleration matched at interior
// waypoints so the resulting piecewise curve is C2-continuous: segment
// i's end derivatives equal segment i+1's start derivatives. Endpoint
// derivatives default to a finite-difference estimate using neighboring
// waypoints (a Catmull-Rom-style tangent), and zero acceleration at the
// open ends.
//
// This generalizes the teacher's control/motion/planner.newPathContext,
// which chains raw waypoints into straight segments for a path-follower
// control loop; here the same "sequence of waypoints becomes a sequence
// of segments" idea produces smooth quintic segments instead, since this
// module's job is to describe the geometry, not to drive a controller
// along it.
func ChainFromWaypoints(waypoints []geomath.Vector2d) []QuinticSpline {
	n := len(waypoints)
	if n < 2 {
		return nil
	}

	tangents := make([]geomath.Vector2d, n)
	for i := range waypoints {
		switch {
		case n == 2:
			tangents[i] = waypoints[1].Sub(waypoints[0])
		case i == 0:
			tangents[i] = waypoints[1].Sub(waypoints[0])
		case i == n-1:
			tangents[i] = waypoints[n-1].Sub(waypoints[n-2])
		default:
			tangents[i] = waypoints[i+1].Sub(waypoints[i-1]).Mul(0.5)
		}
	}

	segments := make([]QuinticSpline, n-1)
	for i := 0; i < n-1; i++ {
		segments[i] = NewQuinticFromEndpoints(
			waypoints[i], tangents[i], geomath.Zero2d,
			waypoints[i+1], tangents[i+1], geomath.Zero2d,
		)
	}
	return segments
}
