package reparam

import "github.com/wrenfield/trajcore/pkg/scalar"

// Stepper is a monotone-advance accessor over a Mapping: repeated calls
// must arrive with non-decreasing s. It keeps a cursor index so
// sequential access is O(1) amortized instead of paying a fresh binary
// search per query.
//
// Steppers hold mutable cursor state and must not be shared across
// goroutines; each caller owns its own instance, per the single-threaded
// synchronous resource model this module follows.
type Stepper struct {
	mapping Mapping
	cursor  int
	lastS   float32
	started bool
}

// NewStepper returns a Stepper positioned before the start of m.
func NewStepper(m Mapping) *Stepper {
	return &Stepper{mapping: m}
}

// StepTo advances the cursor to arc length s and returns the
// corresponding natural parameter u. s must be non-decreasing across
// calls; a regression resets the cursor to the first node and scans
// forward again rather than panicking, since misuse here is a caller bug
// this package can recover from cheaply.
func (st *Stepper) StepTo(s float32) float32 {
	n := len(st.mapping.s)
	if n == 0 {
		return 0
	}
	s = scalar.Clamp(s, 0, st.mapping.Length())
	if st.started && s < st.lastS {
		st.cursor = 0
	}
	st.started = true
	st.lastS = s

	for st.cursor < n-2 && st.mapping.s[st.cursor+1] <= s {
		st.cursor++
	}

	lo, hi := st.cursor, st.cursor+1
	if hi >= n {
		hi = n - 1
		lo = hi
	}
	span := st.mapping.s[hi] - st.mapping.s[lo]
	if span < 1e-9 {
		return st.mapping.u[lo]
	}
	ratio := (s - st.mapping.s[lo]) / span
	return st.mapping.u[lo] + ratio*(st.mapping.u[hi]-st.mapping.u[lo])
}
