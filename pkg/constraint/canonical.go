package constraint

import (
	"github.com/chewxy/math32"
	"github.com/wrenfield/trajcore/pkg/geomath"
	"github.com/wrenfield/trajcore/pkg/mat"
	"github.com/wrenfield/trajcore/pkg/path"
	"github.com/wrenfield/trajcore/pkg/scalar"
)

// botFrameTriple rotates a (position, headingComponent) pair from path
// frame into the bot/chassis frame: rot(−θ) applied to the translation
// part, heading component passed through unchanged — the same
// vecRotated convention geomath.Pose2d uses.
func botFrameTriple(translation geomath.Vector2d, headingComponent, theta float32) []float32 {
	r := translation.Rotated(-theta)
	return []float32{r.X, r.Y, headingComponent}
}

// VelocityFromBotVelTransform builds a VelocityConstraintFunc from the
// canonical form in the component-design section: given a k×3 matrix M
// and positive per-row bounds maxes, the admissible |ds/dt| is
// min_i |maxes_i / (M·r)_i| where r is poseDeriv expressed in the bot
// frame. A row where (M·r)_i is (numerically) zero does not constrain
// velocity.
func VelocityFromBotVelTransform(m mat.Matrix, maxes []float32) VelocityConstraintFunc {
	return func(p path.PathPoint) float32 {
		r := botFrameTriple(p.PositionDeriv, p.HeadingDeriv, p.Heading)
		mr := m.MulVec(r)
		vmax := math32.Inf(1)
		for i, mri := range mr {
			if math32.Abs(mri) < scalar.Epsilon {
				continue
			}
			if v := math32.Abs(maxes[i] / mri); v < vmax {
				vmax = v
			}
		}
		return vmax
	}
}

// AccelerationFromBotAccelTransform builds an AccelerationConstraintFunc
// from the canonical form: bot acceleration expands as
// poseSecondDeriv·v² + poseDeriv·a in the bot frame; the v² term becomes
// a constant offset per row once v is known, and addend (if non-nil)
// contributes a further additive per-row term in the constrained space
// (e.g. back-EMF/friction voltage). For each row the admissible a is
// [(−max+offset)/mult, (max+offset)/mult] (swapped when mult<0); the
// result is the intersection across rows.
func AccelerationFromBotAccelTransform(m mat.Matrix, maxes []float32, addend func(p path.PathPoint, v float32) []float32) AccelerationConstraintFunc {
	return func(p path.PathPoint, v float32) geomath.Interval {
		r := botFrameTriple(p.PositionDeriv, p.HeadingDeriv, p.Heading)
		r2 := botFrameTriple(p.PositionSecondDeriv, p.HeadingSecondDeriv, p.Heading)
		mult := m.MulVec(r)
		v2term := m.MulVec(r2)

		var add []float32
		if addend != nil {
			add = addend(p, v)
		}

		result := geomath.RealInterval
		for i, maxi := range maxes {
			offset := -v * v * v2term[i]
			if add != nil {
				offset -= add[i]
			}
			mi := mult[i]
			if math32.Abs(mi) < scalar.Epsilon {
				if math32.Abs(offset) > maxi {
					return geomath.EmptyInterval
				}
				continue
			}
			lo := (-maxi + offset) / mi
			hi := (maxi + offset) / mi
			if lo > hi {
				lo, hi = hi, lo
			}
			result = result.Intersect(geomath.NewInterval(lo, hi))
			if result.IsEmpty() {
				return result
			}
		}
		return result
	}
}
