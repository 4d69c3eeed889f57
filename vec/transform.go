package vec

import (
	"github.com/phil-mansfield/nnmath/mat"
)

// Translate moves the point v by by.
func (v Vec3[T]) Translate(by Vec3[T]) Vec3[T] { return v.Add(by) }

// ScaleBy scales v component-wise about the origin.
func (v Vec3[T]) ScaleBy(factor Vec3[T]) Vec3[T] { return v.Mul(factor) }

// ScaleAt scales the point v component-wise about origin.
func (v Vec3[T]) ScaleAt(origin, factor Vec3[T]) Vec3[T] {
	return v.Sub(origin).Mul(factor).Add(origin)
}

// RotateAxisAngle rotates v by angle radians around the unit vector axis.
func (v Vec3[T]) RotateAxisAngle(axis Vec3[T], angle T) Vec3[T] {
	return FromArray(mat.AxisAngle(axis.Array(), angle).MulVec(v.Array()))
}

// RotateAxisAngleAt rotates the point v around the line through origin
// pointing along axis.
func (v Vec3[T]) RotateAxisAngleAt(origin, axis Vec3[T], angle T) Vec3[T] {
	return v.Sub(origin).RotateAxisAngle(axis, angle).Add(origin)
}

// RotateQuaternion rotates v by the unit quaternion q.
func (v Vec3[T]) RotateQuaternion(q Quat[T]) Vec3[T] { return q.Rotate(v) }

func (v Vec3[T]) RotateQuaternionAt(origin Vec3[T], q Quat[T]) Vec3[T] {
	return q.Rotate(v.Sub(origin)).Add(origin)
}

// ShearX shears along the x axis: (x, y, z) -> (x, y + fy*x, z + fz*x).
func (v Vec3[T]) ShearX(fy, fz T) Vec3[T] {
	return Vec3[T]{v.X, v.Y + fy*v.X, v.Z + fz*v.X}
}

// ShearY shears along the y axis: (x, y, z) -> (x + fx*y, y, z + fz*y).
func (v Vec3[T]) ShearY(fx, fz T) Vec3[T] {
	return Vec3[T]{v.X + fx*v.Y, v.Y, v.Z + fz*v.Y}
}

// ShearZ shears along the z axis: (x, y, z) -> (x + fx*z, y + fy*z, z).
func (v Vec3[T]) ShearZ(fx, fy T) Vec3[T] {
	return Vec3[T]{v.X + fx*v.Z, v.Y + fy*v.Z, v.Z}
}

func (v Vec3[T]) ShearXAt(origin Vec3[T], fy, fz T) Vec3[T] {
	return v.Sub(origin).ShearX(fy, fz).Add(origin)
}

func (v Vec3[T]) ShearYAt(origin Vec3[T], fx, fz T) Vec3[T] {
	return v.Sub(origin).ShearY(fx, fz).Add(origin)
}

func (v Vec3[T]) ShearZAt(origin Vec3[T], fx, fy T) Vec3[T] {
	return v.Sub(origin).ShearZ(fx, fy).Add(origin)
}
