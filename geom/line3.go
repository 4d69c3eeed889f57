package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Line3 is the infinite line Point + t*Direction. Direction should be a unit
// vector.
type Line3[T num.Real] struct {
	Point, Direction vec.Vec3[T]
}

// LineFromPoints returns the line through p1 and p2, pointing from p1 to p2.
func LineFromPoints[T num.Real](p1, p2 vec.Vec3[T]) Line3[T] {
	return Line3[T]{p1, p2.Sub(p1).Normalize()}
}

func LineFromSegment[T num.Real](s Segment3[T]) Line3[T] {
	return LineFromPoints(s.Start, s.End)
}

func LineFromRay[T num.Real](r Ray3[T]) Line3[T] {
	return Line3[T]{r.Origin, r.Direction}
}

func LineAxisX[T num.Real]() Line3[T] { return Line3[T]{vec.Zero[T](), vec.AxisX[T]()} }
func LineAxisY[T num.Real]() Line3[T] { return Line3[T]{vec.Zero[T](), vec.AxisY[T]()} }
func LineAxisZ[T num.Real]() Line3[T] { return Line3[T]{vec.Zero[T](), vec.AxisZ[T]()} }

// LineAxisXOffset returns the line parallel to the x axis through (0, y, z).
func LineAxisXOffset[T num.Real](y, z T) Line3[T] {
	return Line3[T]{vec.New(0, y, z), vec.AxisX[T]()}
}

// LineAxisYOffset returns the line parallel to the y axis through (x, 0, z).
func LineAxisYOffset[T num.Real](x, z T) Line3[T] {
	return Line3[T]{vec.New(x, 0, z), vec.AxisY[T]()}
}

// LineAxisZOffset returns the line parallel to the z axis through (x, y, 0).
func LineAxisZOffset[T num.Real](x, y T) Line3[T] {
	return Line3[T]{vec.New(x, y, 0), vec.AxisZ[T]()}
}

func (l Line3[T]) linear() linear[T] {
	return linear[T]{l.Point, l.Direction, lineInterval[T]()}
}

func (l Line3[T]) Normalize() Line3[T] {
	return Line3[T]{l.Point, l.Direction.Normalize()}
}

// PointAt returns Point + t*Direction.
func (l Line3[T]) PointAt(t T) vec.Vec3[T] { return l.Point.Add(l.Direction.Scale(t)) }

// ApproxContains returns true if p lies on l.
func (l Line3[T]) ApproxContains(p vec.Vec3[T]) bool {
	return l.ProjectPoint(p).ApproxEqual(p)
}

// Distance returns the distance from p to the line, which is the area of the
// parallelogram spanned by p - Point and Direction.
func (l Line3[T]) Distance(p vec.Vec3[T]) T {
	return p.Sub(l.Point).Cross(l.Direction).Length()
}

// DistanceLine returns the distance between two lines. For skew lines this is
// the scalar triple product of the offset and both directions divided by the
// length of the directions' cross product.
func (l Line3[T]) DistanceLine(o Line3[T]) T {
	cross := l.Direction.Cross(o.Direction)
	if cross.ApproxZero() {
		return l.Distance(o.Point)
	}
	diff := o.Point.Sub(l.Point)
	return num.Abs(diff.Dot(cross)) / cross.Length()
}

func (l Line3[T]) DistanceRay(r Ray3[T]) T {
	return l.linear().distanceTo(r.linear())
}

func (l Line3[T]) DistanceSegment(s Segment3[T]) T {
	return l.linear().distanceTo(s.linear())
}

func (l Line3[T]) ApproxParallelLine(o Line3[T]) bool {
	return l.Direction.Cross(o.Direction).ApproxZero()
}

func (l Line3[T]) ApproxParallelRay(r Ray3[T]) bool {
	return l.Direction.Cross(r.Direction).ApproxZero()
}

func (l Line3[T]) ApproxParallelSegment(s Segment3[T]) bool {
	return l.Direction.Cross(s.Direction()).ApproxZero()
}

func (l Line3[T]) ApproxPerpendicularLine(o Line3[T]) bool {
	return num.ApproxZero(l.Direction.Dot(o.Direction))
}

func (l Line3[T]) ApproxPerpendicularRay(r Ray3[T]) bool {
	return num.ApproxZero(l.Direction.Dot(r.Direction))
}

func (l Line3[T]) ApproxPerpendicularSegment(s Segment3[T]) bool {
	return num.ApproxZero(l.Direction.Dot(s.Direction()))
}

// ApproxCoincident returns true if l and o are the same infinite line.
func (l Line3[T]) ApproxCoincident(o Line3[T]) bool {
	if !l.ApproxParallelLine(o) {
		return false
	}
	return o.Point.Sub(l.Point).Cross(l.Direction).ApproxZero()
}

// ApproxCollinearRay returns true if r lies on l.
func (l Line3[T]) ApproxCollinearRay(r Ray3[T]) bool {
	return l.ApproxCoincident(LineFromRay(r))
}

// ApproxCollinearSegment returns true if s lies on l.
func (l Line3[T]) ApproxCollinearSegment(s Segment3[T]) bool {
	return l.ApproxContains(s.Start) && l.ApproxContains(s.End)
}

// ApproxCoplanarLine returns true if l and o lie in a common plane, i.e.
// they are parallel or they intersect.
func (l Line3[T]) ApproxCoplanarLine(o Line3[T]) bool {
	return l.linear().approxCoplanar(o.linear())
}

// ApproxIntersectsLine returns true if l and o share at least one point.
// Coincident lines intersect.
func (l Line3[T]) ApproxIntersectsLine(o Line3[T]) bool {
	cross := l.Direction.Cross(o.Direction)
	if num.ApproxZero(cross.LengthSqrd()) {
		return l.ApproxContains(o.Point)
	}
	_, ok := l.ApproxIntersectionLine(o)
	return ok
}

// ApproxIntersectionLine returns the point where l and o cross. ok is false
// for skew lines and for parallel lines, including coincident ones, which
// have no single intersection point.
func (l Line3[T]) ApproxIntersectionLine(o Line3[T]) (vec.Vec3[T], bool) {
	cross := l.Direction.Cross(o.Direction)
	denom := cross.LengthSqrd()
	if num.ApproxZero(denom) {
		return vec.Vec3[T]{}, false
	}

	diff := o.Point.Sub(l.Point)
	t := diff.Cross(o.Direction).Dot(cross) / denom
	tOther := diff.Cross(l.Direction).Dot(cross) / denom

	p := l.PointAt(t)
	if !p.ApproxEqual(o.PointAt(tOther)) {
		return vec.Vec3[T]{}, false
	}
	return p, true
}

func (l Line3[T]) ApproxIntersectsRay(r Ray3[T]) bool {
	return l.linear().approxIntersects(r.linear())
}

func (l Line3[T]) ApproxIntersectionRay(r Ray3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := l.linear().intersection(r.linear())
	return p, ok
}

func (l Line3[T]) ApproxIntersectsSegment(s Segment3[T]) bool {
	return l.linear().approxIntersects(s.linear())
}

func (l Line3[T]) ApproxIntersectionSegment(s Segment3[T]) (vec.Vec3[T], bool) {
	p, ok, _ := l.linear().intersection(s.linear())
	return p, ok
}

// ProjectPoint returns the point on l closest to p.
func (l Line3[T]) ProjectPoint(p vec.Vec3[T]) vec.Vec3[T] {
	t := p.Sub(l.Point).Dot(l.Direction)
	return l.PointAt(t)
}

func (l Line3[T]) Translate(by vec.Vec3[T]) Line3[T] {
	return Line3[T]{l.Point.Translate(by), l.Direction}
}

func (l Line3[T]) ScaleAt(origin, factor vec.Vec3[T]) Line3[T] {
	return Line3[T]{l.Point.ScaleAt(origin, factor), l.Direction.ScaleBy(factor).Normalize()}
}

func (l Line3[T]) Scale(factor vec.Vec3[T]) Line3[T] {
	return Line3[T]{l.Point.ScaleBy(factor), l.Direction.ScaleBy(factor).Normalize()}
}

func (l Line3[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Line3[T] {
	return Line3[T]{l.Point.RotateAxisAngle(axis, angle), l.Direction.RotateAxisAngle(axis, angle)}
}

func (l Line3[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Line3[T] {
	return Line3[T]{l.Point.RotateAxisAngleAt(origin, axis, angle), l.Direction.RotateAxisAngle(axis, angle)}
}

func (l Line3[T]) RotateQuaternion(q vec.Quat[T]) Line3[T] {
	return Line3[T]{l.Point.RotateQuaternion(q), l.Direction.RotateQuaternion(q)}
}

func (l Line3[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Line3[T] {
	return Line3[T]{l.Point.RotateQuaternionAt(origin, q), l.Direction.RotateQuaternion(q)}
}

func (l Line3[T]) ShearX(fy, fz T) Line3[T] {
	return Line3[T]{l.Point.ShearX(fy, fz), l.Direction.ShearX(fy, fz).Normalize()}
}

func (l Line3[T]) ShearXAt(origin vec.Vec3[T], fy, fz T) Line3[T] {
	return Line3[T]{l.Point.ShearXAt(origin, fy, fz), l.Direction.ShearX(fy, fz).Normalize()}
}

func (l Line3[T]) ShearY(fx, fz T) Line3[T] {
	return Line3[T]{l.Point.ShearY(fx, fz), l.Direction.ShearY(fx, fz).Normalize()}
}

func (l Line3[T]) ShearYAt(origin vec.Vec3[T], fx, fz T) Line3[T] {
	return Line3[T]{l.Point.ShearYAt(origin, fx, fz), l.Direction.ShearY(fx, fz).Normalize()}
}

func (l Line3[T]) ShearZ(fx, fy T) Line3[T] {
	return Line3[T]{l.Point.ShearZ(fx, fy), l.Direction.ShearZ(fx, fy).Normalize()}
}

func (l Line3[T]) ShearZAt(origin vec.Vec3[T], fx, fy T) Line3[T] {
	return Line3[T]{l.Point.ShearZAt(origin, fx, fy), l.Direction.ShearZ(fx, fy).Normalize()}
}

// Equal compares l and o field by field.
func (l Line3[T]) Equal(o Line3[T]) bool { return l == o }

func (l Line3[T]) ApproxEqual(o Line3[T]) bool {
	return l.Point.ApproxEqual(o.Point) && l.Direction.ApproxEqual(o.Direction)
}

// Less orders lines by Point and then by Direction.
func (l Line3[T]) Less(o Line3[T]) bool {
	if l.Point != o.Point {
		return l.Point.Less(o.Point)
	}
	return l.Direction.Less(o.Direction)
}
