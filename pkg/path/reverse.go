package path

// reversedPath maps a query at s to the base path at Length()-s and
// negates the first-order derivative fields (positionDeriv,
// tanAngleDeriv, headingDeriv), per the reversal contract. It works
// generically over any Path implementation rather than each type
// needing its own reversed variant, following the "reversal via
// composition" approach: orientation is a wrapper, not a per-type field.
type reversedPath struct {
	inner Path
}

func (r reversedPath) Length() float32 { return r.inner.Length() }

func (r reversedPath) PointAt(s float32) PathPoint {
	return reversePoint(r.inner.PointAt(r.inner.Length()-s), s)
}

// Stepper re-queries the base path's PointAt on every step rather than
// sharing a monotone cursor, since the reversed access pattern walks the
// base path backward; this trades the O(1)-amortized fast path for
// O(log n) per step, matching curve.reversedCurve's tradeoff.
func (r reversedPath) Stepper() Stepper {
	return &reversedStepper{inner: r.inner}
}

// Reversed collapses structurally: reversing a reversed path returns the
// original path, never another wrapper layer.
func (r reversedPath) Reversed() Path { return r.inner }

type reversedStepper struct {
	inner Path
}

func (s *reversedStepper) StepTo(length float32) PathPoint {
	return reversePoint(s.inner.PointAt(s.inner.Length()-length), length)
}

func reversePoint(base PathPoint, length float32) PathPoint {
	cp := base.CurvePoint
	cp.Length = length
	cp.PositionDeriv = cp.PositionDeriv.Neg()
	cp.TanAngleDeriv = -cp.TanAngleDeriv

	return PathPoint{
		CurvePoint:         cp,
		Heading:            base.Heading,
		HeadingDeriv:       -base.HeadingDeriv,
		HeadingSecondDeriv: base.HeadingSecondDeriv,
	}
}
