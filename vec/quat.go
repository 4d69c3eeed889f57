package vec

import (
	"github.com/phil-mansfield/nnmath/num"
)

// Quat is a quaternion with vector part (X, Y, Z) and scalar part W.
type Quat[T num.Real] struct {
	X, Y, Z, W T
}

func QuatIdentity[T num.Real]() Quat[T] { return Quat[T]{0, 0, 0, 1} }

// QuatFromAxisAngle returns the unit quaternion which rotates by angle
// radians around the unit vector axis.
func QuatFromAxisAngle[T num.Real](axis Vec3[T], angle T) Quat[T] {
	s, c := num.Sin(angle/2), num.Cos(angle/2)
	return Quat[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

func (q Quat[T]) vector() Vec3[T] { return Vec3[T]{q.X, q.Y, q.Z} }

func (q Quat[T]) Length() T {
	return num.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l == 0 {
		return q
	}
	return Quat[T]{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{-q.X, -q.Y, -q.Z, q.W} }

// Mul returns the Hamilton product q * p, which applies p first and then q.
func (q Quat[T]) Mul(p Quat[T]) Quat[T] {
	qv, pv := q.vector(), p.vector()
	v := pv.Scale(q.W).Add(qv.Scale(p.W)).Add(qv.Cross(pv))
	return Quat[T]{v.X, v.Y, v.Z, q.W*p.W - qv.Dot(pv)}
}

// Rotate rotates v by q. q must be a unit quaternion.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	// v' = v + 2w (u x v) + 2 u x (u x v)
	u := q.vector()
	uv := u.Cross(v)
	return v.Add(uv.Scale(2 * q.W)).Add(u.Cross(uv).Scale(2))
}

func (q Quat[T]) ApproxEqual(p Quat[T]) bool {
	return num.ApproxEqual(q.X, p.X) && num.ApproxEqual(q.Y, p.Y) &&
		num.ApproxEqual(q.Z, p.Z) && num.ApproxEqual(q.W, p.W)
}
