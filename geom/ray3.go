package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Ray3 is the half-line Origin + t*Direction, t >= 0. Direction should be a
// unit vector.
type Ray3[T num.Real] struct {
	Origin, Direction vec.Vec3[T]
}

// RayFromPointToPoint returns the ray starting at from and passing through to.
func RayFromPointToPoint[T num.Real](from, to vec.Vec3[T]) Ray3[T] {
	return Ray3[T]{from, to.Sub(from).Normalize()}
}

func RayAxisX[T num.Real]() Ray3[T] { return Ray3[T]{vec.Zero[T](), vec.AxisX[T]()} }
func RayAxisY[T num.Real]() Ray3[T] { return Ray3[T]{vec.Zero[T](), vec.AxisY[T]()} }
func RayAxisZ[T num.Real]() Ray3[T] { return Ray3[T]{vec.Zero[T](), vec.AxisZ[T]()} }

func (r Ray3[T]) linear() linear[T] {
	return linear[T]{r.Origin, r.Direction, rayInterval[T]()}
}

func (r Ray3[T]) Normalize() Ray3[T] {
	return Ray3[T]{r.Origin, r.Direction.Normalize()}
}

// PointAt returns Origin + t*Direction. t is not restricted to t >= 0.
func (r Ray3[T]) PointAt(t T) vec.Vec3[T] { return r.Origin.Add(r.Direction.Scale(t)) }

func (r Ray3[T]) ApproxContains(p vec.Vec3[T]) bool {
	return r.ProjectPoint(p).ApproxEqual(p)
}

// Distance returns the distance from p to the ray. Points behind the origin
// are measured from the origin.
func (r Ray3[T]) Distance(p vec.Vec3[T]) T {
	diff := p.Sub(r.Origin)
	if diff.Dot(r.Direction) < 0 {
		return r.Origin.Distance(p)
	}
	return diff.Cross(r.Direction).Length()
}

func (r Ray3[T]) DistanceLine(l Line3[T]) T { return l.DistanceRay(r) }

// DistanceRay returns the distance between two rays. Parallel rays are
// measured from whichever origin is closer to the other ray.
func (r Ray3[T]) DistanceRay(o Ray3[T]) T {
	if r.ApproxParallelRay(o) {
		return num.Min(r.Distance(o.Origin), o.Distance(r.Origin))
	}
	return r.linear().distanceTo(o.linear())
}

func (r Ray3[T]) DistanceSegment(s Segment3[T]) T {
	return r.linear().distanceTo(s.linear())
}

func (r Ray3[T]) ApproxParallelLine(l Line3[T]) bool { return l.ApproxParallelRay(r) }

func (r Ray3[T]) ApproxParallelRay(o Ray3[T]) bool {
	return r.Direction.Cross(o.Direction).ApproxZero()
}

func (r Ray3[T]) ApproxParallelSegment(s Segment3[T]) bool {
	return r.Direction.Cross(s.Direction()).ApproxZero()
}

func (r Ray3[T]) ApproxPerpendicularLine(l Line3[T]) bool { return l.ApproxPerpendicularRay(r) }

func (r Ray3[T]) ApproxPerpendicularRay(o Ray3[T]) bool {
	return num.ApproxZero(r.Direction.Dot(o.Direction))
}

func (r Ray3[T]) ApproxPerpendicularSegment(s Segment3[T]) bool {
	return num.ApproxZero(r.Direction.Dot(s.Direction()))
}

func (r Ray3[T]) ApproxCollinearLine(l Line3[T]) bool { return l.ApproxCollinearRay(r) }

// ApproxCollinearRay returns true if r and o lie on a common line, whichever
// way they point.
func (r Ray3[T]) ApproxCollinearRay(o Ray3[T]) bool {
	return r.linear().approxCollinear(o.linear())
}

func (r Ray3[T]) ApproxCollinearSegment(s Segment3[T]) bool {
	return r.linear().approxCollinear(s.linear())
}

func (r Ray3[T]) ApproxIntersectsLine(l Line3[T]) bool { return l.ApproxIntersectsRay(r) }

func (r Ray3[T]) ApproxIntersectionLine(l Line3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := r.linear().intersection(l.linear())
	return p, ok
}

// ApproxIntersectsRay returns true if r and o share at least one point. Both
// solved parameters must be non-negative.
func (r Ray3[T]) ApproxIntersectsRay(o Ray3[T]) bool {
	return r.linear().approxIntersects(o.linear())
}

// ApproxIntersectionRay returns the single point shared by r and o. ok is
// false if they do not meet or if they overlap along a shared piece of line.
func (r Ray3[T]) ApproxIntersectionRay(o Ray3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := r.linear().intersection(o.linear())
	return p, ok
}

func (r Ray3[T]) ApproxIntersectsSegment(s Segment3[T]) bool {
	return r.linear().approxIntersects(s.linear())
}

func (r Ray3[T]) ApproxIntersectionSegment(s Segment3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := r.linear().intersection(s.linear())
	return p, ok
}

// ProjectPoint returns the point on r closest to p.
func (r Ray3[T]) ProjectPoint(p vec.Vec3[T]) vec.Vec3[T] {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.PointAt(t)
}

func (r Ray3[T]) Translate(by vec.Vec3[T]) Ray3[T] {
	return Ray3[T]{r.Origin.Translate(by), r.Direction}
}

func (r Ray3[T]) ScaleAt(origin, factor vec.Vec3[T]) Ray3[T] {
	return Ray3[T]{r.Origin.ScaleAt(origin, factor), r.Direction.ScaleBy(factor).Normalize()}
}

func (r Ray3[T]) Scale(factor vec.Vec3[T]) Ray3[T] {
	return Ray3[T]{r.Origin.ScaleBy(factor), r.Direction.ScaleBy(factor).Normalize()}
}

func (r Ray3[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Ray3[T] {
	return Ray3[T]{r.Origin.RotateAxisAngle(axis, angle), r.Direction.RotateAxisAngle(axis, angle)}
}

func (r Ray3[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Ray3[T] {
	return Ray3[T]{r.Origin.RotateAxisAngleAt(origin, axis, angle), r.Direction.RotateAxisAngle(axis, angle)}
}

func (r Ray3[T]) RotateQuaternion(q vec.Quat[T]) Ray3[T] {
	return Ray3[T]{r.Origin.RotateQuaternion(q), r.Direction.RotateQuaternion(q)}
}

func (r Ray3[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Ray3[T] {
	return Ray3[T]{r.Origin.RotateQuaternionAt(origin, q), r.Direction.RotateQuaternion(q)}
}

func (r Ray3[T]) ShearX(fy, fz T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearX(fy, fz), r.Direction.ShearX(fy, fz).Normalize()}
}

func (r Ray3[T]) ShearXAt(origin vec.Vec3[T], fy, fz T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearXAt(origin, fy, fz), r.Direction.ShearX(fy, fz).Normalize()}
}

func (r Ray3[T]) ShearY(fx, fz T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearY(fx, fz), r.Direction.ShearY(fx, fz).Normalize()}
}

func (r Ray3[T]) ShearYAt(origin vec.Vec3[T], fx, fz T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearYAt(origin, fx, fz), r.Direction.ShearY(fx, fz).Normalize()}
}

func (r Ray3[T]) ShearZ(fx, fy T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearZ(fx, fy), r.Direction.ShearZ(fx, fy).Normalize()}
}

func (r Ray3[T]) ShearZAt(origin vec.Vec3[T], fx, fy T) Ray3[T] {
	return Ray3[T]{r.Origin.ShearZAt(origin, fx, fy), r.Direction.ShearZ(fx, fy).Normalize()}
}

func (r Ray3[T]) Equal(o Ray3[T]) bool { return r == o }

func (r Ray3[T]) ApproxEqual(o Ray3[T]) bool {
	return r.Origin.ApproxEqual(o.Origin) && r.Direction.ApproxEqual(o.Direction)
}

func (r Ray3[T]) Less(o Ray3[T]) bool {
	if r.Origin != o.Origin {
		return r.Origin.Less(o.Origin)
	}
	return r.Direction.Less(o.Direction)
}
