package path

import "github.com/wrenfield/trajcore/pkg/scalar"

// CompositePath concatenates sub-paths end to end, offsetting each by
// the cumulative length of the paths before it.
type CompositePath struct {
	segments []Path
	offsets  []float32 // offsets[i] is the start-of-segment-i arc length; offsets[len(segments)] is the total
}

// NewCompositePath chains segments in order.
func NewCompositePath(segments ...Path) CompositePath {
	offsets := make([]float32, len(segments)+1)
	for i, seg := range segments {
		offsets[i+1] = offsets[i] + seg.Length()
	}
	return CompositePath{segments: segments, offsets: offsets}
}

func (c CompositePath) Length() float32 { return c.offsets[len(c.offsets)-1] }

func (c CompositePath) segmentIndex(s float32) int {
	lo, hi := 0, len(c.segments)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.offsets[mid] <= s {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (c CompositePath) PointAt(s float32) PathPoint {
	s = scalar.Clamp(s, 0, c.Length())
	i := c.segmentIndex(s)
	p := c.segments[i].PointAt(s - c.offsets[i])
	p.Length = s
	return p
}

func (c CompositePath) Stepper() Stepper {
	return &compositeStepper{path: c}
}

func (c CompositePath) Reversed() Path { return reversedPath{inner: c} }

type compositeStepper struct {
	path CompositePath
	idx  int
	seg  Stepper
}

func (st *compositeStepper) StepTo(s float32) PathPoint {
	s = scalar.Clamp(s, 0, st.path.Length())
	for st.idx < len(st.path.segments)-1 && s >= st.path.offsets[st.idx+1] {
		st.idx++
		st.seg = nil
	}
	if st.seg == nil {
		st.seg = st.path.segments[st.idx].Stepper()
	}
	p := st.seg.StepTo(s - st.path.offsets[st.idx])
	p.Length = s
	return p
}
