package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Segment3 is the set of points Start + t*(End - Start), 0 <= t <= 1.
type Segment3[T num.Real] struct {
	Start, End vec.Vec3[T]
}

func (s Segment3[T]) linear() linear[T] {
	return linear[T]{s.Start, s.End.Sub(s.Start), segmentInterval[T]()}
}

// DirectionUnnormalized returns End - Start.
func (s Segment3[T]) DirectionUnnormalized() vec.Vec3[T] { return s.End.Sub(s.Start) }

// Direction returns the unit vector pointing from Start to End.
func (s Segment3[T]) Direction() vec.Vec3[T] { return s.End.Sub(s.Start).Normalize() }

func (s Segment3[T]) LengthSqrd() T { return s.Start.DistanceSqrd(s.End) }
func (s Segment3[T]) Length() T     { return s.Start.Distance(s.End) }

func (s Segment3[T]) Midpoint() vec.Vec3[T] { return s.Start.Add(s.End).Scale(0.5) }

// PointAt interpolates between Start (t = 0) and End (t = 1).
func (s Segment3[T]) PointAt(t T) vec.Vec3[T] { return s.Start.Lerp(s.End, t) }

func (s Segment3[T]) ApproxContains(p vec.Vec3[T]) bool {
	return s.ProjectPoint(p).ApproxEqual(p)
}

// Distance returns the distance from p to the closest point on s.
func (s Segment3[T]) Distance(p vec.Vec3[T]) T {
	return s.ProjectPoint(p).Distance(p)
}

func (s Segment3[T]) DistanceLine(l Line3[T]) T { return l.DistanceSegment(s) }
func (s Segment3[T]) DistanceRay(r Ray3[T]) T   { return r.DistanceSegment(s) }

// DistanceSegment returns the distance between two segments. Parallel
// segments are measured between each endpoint and the other segment.
func (s Segment3[T]) DistanceSegment(o Segment3[T]) T {
	if s.ApproxParallelSegment(o) {
		return num.Min(
			num.Min(s.Distance(o.Start), s.Distance(o.End)),
			num.Min(o.Distance(s.Start), o.Distance(s.End)),
		)
	}
	return s.linear().distanceTo(o.linear())
}

func (s Segment3[T]) ApproxParallelLine(l Line3[T]) bool { return l.ApproxParallelSegment(s) }
func (s Segment3[T]) ApproxParallelRay(r Ray3[T]) bool   { return r.ApproxParallelSegment(s) }

func (s Segment3[T]) ApproxParallelSegment(o Segment3[T]) bool {
	return s.Direction().Cross(o.Direction()).ApproxZero()
}

func (s Segment3[T]) ApproxPerpendicularLine(l Line3[T]) bool {
	return l.ApproxPerpendicularSegment(s)
}

func (s Segment3[T]) ApproxPerpendicularRay(r Ray3[T]) bool {
	return r.ApproxPerpendicularSegment(s)
}

func (s Segment3[T]) ApproxPerpendicularSegment(o Segment3[T]) bool {
	return num.ApproxZero(s.Direction().Dot(o.Direction()))
}

func (s Segment3[T]) ApproxCollinearLine(l Line3[T]) bool { return l.ApproxCollinearSegment(s) }
func (s Segment3[T]) ApproxCollinearRay(r Ray3[T]) bool   { return r.ApproxCollinearSegment(s) }

func (s Segment3[T]) ApproxCollinearSegment(o Segment3[T]) bool {
	return s.linear().approxCollinear(o.linear())
}

// ApproxCoplanar returns true if the four endpoints of s and o lie in a
// common plane.
func (s Segment3[T]) ApproxCoplanar(o Segment3[T]) bool {
	return s.linear().approxCoplanar(o.linear())
}

func (s Segment3[T]) ApproxIntersectsLine(l Line3[T]) bool { return l.ApproxIntersectsSegment(s) }
func (s Segment3[T]) ApproxIntersectsRay(r Ray3[T]) bool   { return r.ApproxIntersectsSegment(s) }

func (s Segment3[T]) ApproxIntersectionLine(l Line3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := s.linear().intersection(l.linear())
	return p, ok
}

func (s Segment3[T]) ApproxIntersectionRay(r Ray3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := s.linear().intersection(r.linear())
	return p, ok
}

// ApproxIntersectsSegment returns true if s and o share at least one point,
// including collinear segments which overlap.
func (s Segment3[T]) ApproxIntersectsSegment(o Segment3[T]) bool {
	return s.linear().approxIntersects(o.linear())
}

// ApproxIntersectionSegment returns the single point shared by s and o.
// Collinear segments which meet only at an endpoint return that endpoint;
// collinear segments which overlap have no single intersection point.
func (s Segment3[T]) ApproxIntersectionSegment(o Segment3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := s.linear().intersection(o.linear())
	return p, ok
}

// ProjectPoint returns the point on s closest to p. A zero-length segment
// projects everything onto Start.
func (s Segment3[T]) ProjectPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return s.linear().closestPoint(p)
}

func (s Segment3[T]) Translate(by vec.Vec3[T]) Segment3[T] {
	return Segment3[T]{s.Start.Translate(by), s.End.Translate(by)}
}

func (s Segment3[T]) ScaleAt(origin, factor vec.Vec3[T]) Segment3[T] {
	return Segment3[T]{s.Start.ScaleAt(origin, factor), s.End.ScaleAt(origin, factor)}
}

func (s Segment3[T]) Scale(factor vec.Vec3[T]) Segment3[T] {
	return Segment3[T]{s.Start.ScaleBy(factor), s.End.ScaleBy(factor)}
}

func (s Segment3[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Segment3[T] {
	return Segment3[T]{s.Start.RotateAxisAngle(axis, angle), s.End.RotateAxisAngle(axis, angle)}
}

func (s Segment3[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Segment3[T] {
	return Segment3[T]{
		s.Start.RotateAxisAngleAt(origin, axis, angle),
		s.End.RotateAxisAngleAt(origin, axis, angle),
	}
}

func (s Segment3[T]) RotateQuaternion(q vec.Quat[T]) Segment3[T] {
	return Segment3[T]{s.Start.RotateQuaternion(q), s.End.RotateQuaternion(q)}
}

func (s Segment3[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Segment3[T] {
	return Segment3[T]{s.Start.RotateQuaternionAt(origin, q), s.End.RotateQuaternionAt(origin, q)}
}

func (s Segment3[T]) ShearX(fy, fz T) Segment3[T] {
	return Segment3[T]{s.Start.ShearX(fy, fz), s.End.ShearX(fy, fz)}
}

func (s Segment3[T]) ShearXAt(origin vec.Vec3[T], fy, fz T) Segment3[T] {
	return Segment3[T]{s.Start.ShearXAt(origin, fy, fz), s.End.ShearXAt(origin, fy, fz)}
}

func (s Segment3[T]) ShearY(fx, fz T) Segment3[T] {
	return Segment3[T]{s.Start.ShearY(fx, fz), s.End.ShearY(fx, fz)}
}

func (s Segment3[T]) ShearYAt(origin vec.Vec3[T], fx, fz T) Segment3[T] {
	return Segment3[T]{s.Start.ShearYAt(origin, fx, fz), s.End.ShearYAt(origin, fx, fz)}
}

func (s Segment3[T]) ShearZ(fx, fy T) Segment3[T] {
	return Segment3[T]{s.Start.ShearZ(fx, fy), s.End.ShearZ(fx, fy)}
}

func (s Segment3[T]) ShearZAt(origin vec.Vec3[T], fx, fy T) Segment3[T] {
	return Segment3[T]{s.Start.ShearZAt(origin, fx, fy), s.End.ShearZAt(origin, fx, fy)}
}

func (s Segment3[T]) Equal(o Segment3[T]) bool { return s == o }

func (s Segment3[T]) ApproxEqual(o Segment3[T]) bool {
	return s.Start.ApproxEqual(o.Start) && s.End.ApproxEqual(o.End)
}

func (s Segment3[T]) Less(o Segment3[T]) bool {
	if s.Start != o.Start {
		return s.Start.Less(o.Start)
	}
	return s.End.Less(o.End)
}
