package mat

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrSingular is returned when a matrix cannot be inverted to within
// numerical tolerance.
var ErrSingular = errors.New("mat: matrix is singular")

// Inverse returns the inverse of a square matrix via Gauss-Jordan
// elimination with partial pivoting.
func (m Matrix) Inverse() (Matrix, error) {
	if m.Rows != m.Cols {
		return Matrix{}, errors.New("mat: Inverse requires a square matrix")
	}
	n := m.Rows
	aug := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		pivotRow := col
		best := math32.Abs(aug.At(col, col))
		for r := col + 1; r < n; r++ {
			if v := math32.Abs(aug.At(r, col)); v > best {
				best = v
				pivotRow = r
			}
		}
		if best < 1e-9 {
			return Matrix{}, ErrSingular
		}
		if pivotRow != col {
			swapRows(&aug, col, pivotRow)
			swapRows(&inv, col, pivotRow)
		}

		pivot := aug.At(col, col)
		scaleRow(&aug, col, 1/pivot)
		scaleRow(&inv, col, 1/pivot)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug.At(r, col)
			if factor == 0 {
				continue
			}
			addScaledRow(&aug, r, col, -factor)
			addScaledRow(&inv, r, col, -factor)
		}
	}
	return inv, nil
}

func swapRows(m *Matrix, a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

func scaleRow(m *Matrix, r int, c float32) {
	row := m.Row(r)
	for i := range row {
		row[i] *= c
	}
}

// addScaledRow adds c times row src onto row dst.
func addScaledRow(m *Matrix, dst, src int, c float32) {
	d, s := m.Row(dst), m.Row(src)
	for i := range d {
		d[i] += c * s[i]
	}
}
