package mat

import "errors"

// ErrRankDeficient is returned when PseudoInverse's normal-equations
// system is too ill-conditioned to invert, i.e. the drive is
// over-actuated in a way that produces a genuinely singular geometry
// (not merely the common near-singularity the mecanum/swerve factories
// work around by perturbing a wheel angle).
var ErrRankDeficient = errors.New("mat: rank-deficient matrix, pseudo-inverse failed")

// PseudoInverse returns the Moore-Penrose pseudo-inverse of m via the
// normal equations: (MᵀM)⁻¹Mᵀ for a tall, full-column-rank m (more rows
// than columns — the common case here, one row per motor/wheel), or
// Mᵀ(MMᵀ)⁻¹ for a wide m. Square matrices fall back to the plain
// inverse. This is adequate for the small, well-conditioned matrices the
// drive model builds; see DESIGN.md for why the teacher's full SVD-based
// pseudo-inverse was not ported.
func (m Matrix) PseudoInverse() (Matrix, error) {
	switch {
	case m.Rows == m.Cols:
		return m.Inverse()
	case m.Rows > m.Cols:
		mt := m.Transpose()
		gram := mt.Mul(m)
		inv, err := gram.Inverse()
		if err != nil {
			return Matrix{}, ErrRankDeficient
		}
		return inv.Mul(mt), nil
	default:
		mt := m.Transpose()
		gram := m.Mul(mt)
		inv, err := gram.Inverse()
		if err != nil {
			return Matrix{}, ErrRankDeficient
		}
		return mt.Mul(inv), nil
	}
}
