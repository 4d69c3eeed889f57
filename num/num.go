/*package num contains the scalar helpers shared by every nnmath package.

All approximate comparisons route through Epsilon so that every primitive in
geom agrees on what "zero" means.
*/
package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the element type of every vector and primitive.
type Real interface {
	constraints.Float
}

// Epsilon is the tolerance used by every approximate comparison.
const Epsilon = 0.00001

// Pi returns pi converted to T.
func Pi[T Real]() T { return T(math.Pi) }

func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T Real](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T Real](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts x to the range [lo, hi].
func Clamp[T Real](x, lo, hi T) T {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

// Sqrd returns x*x.
func Sqrd[T Real](x T) T { return x * x }

func Sqrt[T Real](x T) T { return T(math.Sqrt(float64(x))) }
func Sin[T Real](x T) T  { return T(math.Sin(float64(x))) }
func Cos[T Real](x T) T  { return T(math.Cos(float64(x))) }

// Acos is math.Acos with its argument clamped to [-1, 1], so rounding error
// in a dot product of unit vectors never produces NaN.
func Acos[T Real](x T) T { return T(math.Acos(float64(Clamp(x, -1, 1)))) }

// Lerp linearly interpolates from a to b. t = 0 gives a and t = 1 gives b.
func Lerp[T Real](a, b, t T) T { return a + t*(b-a) }

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf[T Real](sign int) T { return T(math.Inf(sign)) }

// ApproxZero returns true if |x| <= Epsilon.
func ApproxZero[T Real](x T) bool {
	return Abs(x) <= Epsilon
}

// ApproxEqual compares a and b using an absolute tolerance for values near
// zero and a relative tolerance for large values.
func ApproxEqual[T Real](a, b T) bool {
	if a == b {
		return true
	}
	diff := Abs(a - b)
	if diff <= Epsilon {
		return true
	}
	return diff <= Epsilon*Max(Abs(a), Abs(b))
}

// ApproxLess returns true if a < b and the two are not approximately equal.
func ApproxLess[T Real](a, b T) bool { return a < b && !ApproxEqual(a, b) }

// ApproxGreater returns true if a > b and the two are not approximately
// equal.
func ApproxGreater[T Real](a, b T) bool { return a > b && !ApproxEqual(a, b) }

func ApproxLessOrEqual[T Real](a, b T) bool    { return a < b || ApproxEqual(a, b) }
func ApproxGreaterOrEqual[T Real](a, b T) bool { return a > b || ApproxEqual(a, b) }

func ApproxLessZero[T Real](x T) bool    { return x < 0 && !ApproxZero(x) }
func ApproxGreaterZero[T Real](x T) bool { return x > 0 && !ApproxZero(x) }
