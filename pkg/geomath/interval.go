package geomath

import "github.com/chewxy/math32"

// Interval is a closed real interval [Lo, Hi]. The empty interval has
// both bounds set to NaN; use IsEmpty to test for it rather than
// comparing bounds directly.
type Interval struct {
	Lo, Hi float32
}

// EmptyInterval is the canonical empty interval.
var EmptyInterval = Interval{Lo: nan(), Hi: nan()}

// RealInterval is (-inf, +inf), the identity element for Intersect.
var RealInterval = Interval{Lo: math32.Inf(-1), Hi: math32.Inf(1)}

func nan() float32 { return math32.NaN() }

// NewInterval builds [lo, hi]. Callers must ensure lo <= hi; this
// constructor does not itself validate, matching the data model's
// invariant that non-empty implies lo<=hi is established by the caller.
func NewInterval(lo, hi float32) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// Symmetric returns [c-r, c+r].
func Symmetric(r, c float32) Interval {
	return Interval{Lo: c - r, Hi: c + r}
}

// IsEmpty reports whether the interval is the canonical empty interval.
func (iv Interval) IsEmpty() bool {
	return math32.IsNaN(iv.Lo) || math32.IsNaN(iv.Hi)
}

// Contains reports whether v lies within the closed interval.
func (iv Interval) Contains(v float32) bool {
	if iv.IsEmpty() {
		return false
	}
	return v >= iv.Lo && v <= iv.Hi
}

// Intersect returns the intersection of iv and o. Intersect is
// commutative and associative, and RealInterval is its identity; an
// empty operand (or an empty result) is absorbing.
func (iv Interval) Intersect(o Interval) Interval {
	if iv.IsEmpty() || o.IsEmpty() {
		return EmptyInterval
	}
	lo := math32.Max(iv.Lo, o.Lo)
	hi := math32.Min(iv.Hi, o.Hi)
	if lo > hi {
		return EmptyInterval
	}
	return Interval{Lo: lo, Hi: hi}
}
