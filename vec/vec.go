/*package vec contains the three dimensional vector and quaternion types that
the geom primitives are built from.

Vectors are used both as points and as directions. The transform methods
(Translate, ScaleAt, RotateAxisAngleAt, ShearXAt, ...) treat the receiver as a
point; the pivot-free forms (ScaleBy, RotateAxisAngle, ShearX, ...) are linear
maps and are the correct way to transform directions.
*/
package vec

import (
	"github.com/phil-mansfield/nnmath/num"
)

// Vec3 is a three dimensional vector.
type Vec3[T num.Real] struct {
	X, Y, Z T
}

func New[T num.Real](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

func Zero[T num.Real]() Vec3[T] { return Vec3[T]{} }
func One[T num.Real]() Vec3[T]  { return Vec3[T]{1, 1, 1} }

func AxisX[T num.Real]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func AxisY[T num.Real]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func AxisZ[T num.Real]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Array returns v as an array, in the layout used by mat.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

func FromArray[T num.Real](a [3]T) Vec3[T] { return Vec3[T]{a[0], a[1], a[2]} }

func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Scale multiplies every component of v by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Mul multiplies v and u component-wise.
func (v Vec3[T]) Mul(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X * u.X, v.Y * u.Y, v.Z * u.Z} }

// Div divides v by u component-wise.
func (v Vec3[T]) Div(u Vec3[T]) Vec3[T] { return Vec3[T]{v.X / u.X, v.Y / u.Y, v.Z / u.Z} }

func (v Vec3[T]) Dot(u Vec3[T]) T { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3[T]) LengthSqrd() T { return v.Dot(v) }
func (v Vec3[T]) Length() T     { return num.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector pointing along v. The zero vector is
// returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec3[T]{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3[T]) DistanceSqrd(u Vec3[T]) T { return u.Sub(v).LengthSqrd() }
func (v Vec3[T]) Distance(u Vec3[T]) T     { return u.Sub(v).Length() }

// Lerp linearly interpolates from v to u.
func (v Vec3[T]) Lerp(u Vec3[T], t T) Vec3[T] {
	return Vec3[T]{num.Lerp(v.X, u.X, t), num.Lerp(v.Y, u.Y, t), num.Lerp(v.Z, u.Z, t)}
}

// Angle returns the unsigned angle between v and u in radians.
func (v Vec3[T]) Angle(u Vec3[T]) T {
	l := v.Length() * u.Length()
	if l == 0 {
		return 0
	}
	return num.Acos(v.Dot(u) / l)
}

// ApproxEqual compares v and u component-wise with num.ApproxEqual.
func (v Vec3[T]) ApproxEqual(u Vec3[T]) bool {
	return num.ApproxEqual(v.X, u.X) && num.ApproxEqual(v.Y, u.Y) &&
		num.ApproxEqual(v.Z, u.Z)
}

func (v Vec3[T]) ApproxZero() bool {
	return num.ApproxZero(v.X) && num.ApproxZero(v.Y) && num.ApproxZero(v.Z)
}

// Less orders vectors lexicographically by x, then y, then z.
func (v Vec3[T]) Less(u Vec3[T]) bool {
	if v.X != u.X {
		return v.X < u.X
	} else if v.Y != u.Y {
		return v.Y < u.Y
	}
	return v.Z < u.Z
}
