package mat

import (
	"github.com/phil-mansfield/nnmath/num"
)

// Mat3 is a 3x3 matrix stored row-major. It is a value type so rotations
// never allocate.
type Mat3[T num.Real] [9]T

func Identity3[T num.Real]() Mat3[T] {
	return Mat3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// AxisAngle returns the matrix which rotates vectors counter-clockwise by
// angle radians around axis. axis must be a unit vector.
func AxisAngle[T num.Real](axis [3]T, angle T) Mat3[T] {
	c, s := num.Cos(angle), num.Sin(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	return Mat3[T]{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	}
}

// MulVec returns m * v.
func (m Mat3[T]) MulVec(v [3]T) [3]T {
	return [3]T{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Mul returns m * o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*o[0*3+c] + m[r*3+1]*o[1*3+c] + m[r*3+2]*o[2*3+c]
		}
	}
	return out
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Matrix copies m into a dense Matrix so it can be factored.
func (m Mat3[T]) Matrix() *Matrix[T] {
	vals := make([]T, 9)
	copy(vals, m[:])
	return NewMatrix(vals, 3, 3)
}
