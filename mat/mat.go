/*package mat contains the small dense linear algebra routines used by vec and
geom: LU factorisation for solving square systems and fixed 3x3 rotation
matrices.
*/
package mat

import (
	"github.com/phil-mansfield/nnmath/num"
)

// Matrix is a dense, row-major matrix.
type Matrix[T num.Real] struct {
	Vals          []T
	Width, Height int
}

// LUFactors is the LU decomposition of a square matrix with partial
// pivoting. Row i of the original matrix was swapped with row pivot[i].
type LUFactors[T num.Real] struct {
	lu       Matrix[T]
	pivot    []int
	d        T
	singular bool
}

func NewMatrix[T num.Real](vals []T, width, height int) *Matrix[T] {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix[T]{Vals: vals, Width: width, Height: height}
}

func NewLUFactors[T num.Real](n int) *LUFactors[T] {
	luf := new(LUFactors[T])

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]T, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// MulVector computes m * xs and writes the result to out.
func (m *Matrix[T]) MulVector(xs, out []T) {
	if len(xs) != m.Width {
		panic("len(xs) != m.Width")
	} else if len(out) != m.Height {
		panic("len(out) != m.Height")
	}

	for i := 0; i < m.Height; i++ {
		var sum T
		row := m.Vals[i*m.Width : (i+1)*m.Width]
		for j := range row {
			sum += row[j] * xs[j]
		}
		out[i] = sum
	}
}

func (m *Matrix[T]) LU() *LUFactors[T] {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors[T](m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt computes the LU decomposition of m into luf, reusing luf's
// buffers. A singular m is recorded in luf rather than reported by panic.
func (m *Matrix[T]) LUFactorsAt(luf *LUFactors[T]) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	scale := make([]T, n)
	lu := luf.lu.Vals
	luf.d = 1
	luf.singular = false
	copy(lu, m.Vals)

	for i := 0; i < n; i++ {
		iOffset := i * n

		var max T
		for j := 0; j < n; j++ {
			tmp := num.Abs(lu[iOffset+j])
			if tmp > max {
				max = tmp
			}
		}
		if max == 0 {
			luf.singular = true
			return
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		var max T
		maxi := k
		for i := k; i < n; i++ {
			tmp := scale[i] * num.Abs(lu[i*n+k])
			if tmp > max {
				max = tmp
				maxi = i
			}
		}

		if k != maxi {
			kOffset, maxiOffset := n*k, n*maxi
			for j := 0; j < n; j++ {
				idx1, idx2 := kOffset+j, maxiOffset+j
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		if lu[n*k+k] == 0 {
			luf.singular = true
			return
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}
}

// Singular returns true if the factored matrix has no inverse.
func (luf *LUFactors[T]) Singular() bool { return luf.singular }

// SolveVector solves M * xs = bs for xs. ok is false if M is singular.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors[T]) SolveVector(bs, xs []T) (ok bool) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}
	if luf.singular {
		return false
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	copy(xs, bs)
	lu := luf.lu.Vals

	forwardSubst(n, luf.pivot, lu, xs)
	backSubst(n, lu, xs)
	return true
}

// Solves L * y = b for y in place, undoing the row pivots as it goes.
// y_i = b_i - sum_j=0^i-1 (alpha_ij y_j)
func forwardSubst[T num.Real](n int, pivot []int, lu, ys []T) {
	nzIdx := -1
	for i := 0; i < n; i++ {
		piv := pivot[i]
		sum := ys[piv]
		ys[piv] = ys[i]

		if nzIdx >= 0 {
			iOffset := i * n
			for j := nzIdx; j < i; j++ {
				sum -= lu[iOffset+j] * ys[j]
			}
		} else if sum != 0 {
			nzIdx = i
		}

		ys[i] = sum
	}
}

// Solves U * x = y for x in place.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst[T num.Real](n int, lu, xs []T) {
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		iOffset := n * i
		for j := i + 1; j < n; j++ {
			sum -= lu[iOffset+j] * xs[j]
		}
		xs[i] = sum / lu[iOffset+i]
	}
}

// Invert writes the inverse of the factored matrix to out. ok is false if
// the matrix is singular, in which case out is left untouched.
func (luf *LUFactors[T]) Invert(out *Matrix[T]) (ok bool) {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("out matrix is non-square.")
	} else if n != out.Width {
		panic("out matrix different size than m matrix.")
	}
	if luf.singular {
		return false
	}

	col := make([]T, n)
	for j := 0; j < n; j++ {
		for i := range col {
			col[i] = 0
		}
		col[j] = 1
		luf.SolveVector(col, col)
		for i := 0; i < n; i++ {
			out.Vals[i*n+j] = col[i]
		}
	}
	return true
}

func (luf *LUFactors[T]) Determinant() T {
	if luf.singular {
		return 0
	}

	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}

// Solve solves m * xs = bs and returns xs. ok is false if m is singular.
func Solve[T num.Real](m *Matrix[T], bs []T) (xs []T, ok bool) {
	luf := m.LU()
	xs = make([]T, len(bs))
	if !luf.SolveVector(bs, xs) {
		return nil, false
	}
	return xs, true
}
