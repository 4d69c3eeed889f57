package geom

import (
	"github.com/phil-mansfield/nnmath/mat"
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Plane is the set of points p with (p - Origin) . Normal = 0. Normal should
// be a unit vector; its direction defines the positive side of the plane.
type Plane[T num.Real] struct {
	Origin, Normal vec.Vec3[T]
}

// PlaneFromPoints returns the plane through three points, with the normal
// oriented by the right-hand rule. ok is false if the points are collinear.
func PlaneFromPoints[T num.Real](p1, p2, p3 vec.Vec3[T]) (Plane[T], bool) {
	if approxCollinearPoints(p1, p2, p3) {
		return Plane[T]{}, false
	}
	return Plane[T]{p1, p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()}, true
}

// approxCollinearPoints measures the height of the triangle p1 p2 p3 over its
// longest side in units of that side, so tiny and huge triangles are judged
// alike.
func approxCollinearPoints[T num.Real](p1, p2, p3 vec.Vec3[T]) bool {
	longest := num.Max(p1.DistanceSqrd(p2), num.Max(p2.DistanceSqrd(p3), p3.DistanceSqrd(p1)))
	if longest == 0 {
		return true
	}
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	return n.Scale(1 / longest).ApproxZero()
}

// PlaneFromTriangle returns the plane containing t. ok is false if t is
// degenerate.
func PlaneFromTriangle[T num.Real](t Triangle3[T]) (Plane[T], bool) {
	return PlaneFromPoints(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

func PlaneXY[T num.Real]() Plane[T] { return Plane[T]{vec.Zero[T](), vec.AxisZ[T]()} }
func PlaneXZ[T num.Real]() Plane[T] { return Plane[T]{vec.Zero[T](), vec.AxisY[T]()} }
func PlaneYZ[T num.Real]() Plane[T] { return Plane[T]{vec.Zero[T](), vec.AxisX[T]()} }

// PlaneXYOffset returns the plane parallel to xy through (0, 0, z).
func PlaneXYOffset[T num.Real](z T) Plane[T] {
	return Plane[T]{vec.New(0, 0, z), vec.AxisZ[T]()}
}

// PlaneXZOffset returns the plane parallel to xz through (0, y, 0).
func PlaneXZOffset[T num.Real](y T) Plane[T] {
	return Plane[T]{vec.New(0, y, 0), vec.AxisY[T]()}
}

// PlaneYZOffset returns the plane parallel to yz through (x, 0, 0).
func PlaneYZOffset[T num.Real](x T) Plane[T] {
	return Plane[T]{vec.New(x, 0, 0), vec.AxisX[T]()}
}

func (p Plane[T]) Normalize() Plane[T] { return Plane[T]{p.Origin, p.Normal.Normalize()} }

func (p Plane[T]) ApproxContains(pt vec.Vec3[T]) bool {
	return num.ApproxZero(pt.Sub(p.Origin).Dot(p.Normal))
}

// SignedDistance is positive on the side Normal points towards.
func (p Plane[T]) SignedDistance(pt vec.Vec3[T]) T {
	return pt.Sub(p.Origin).Dot(p.Normal)
}

func (p Plane[T]) Distance(pt vec.Vec3[T]) T { return num.Abs(p.SignedDistance(pt)) }

// DistanceLine is zero unless l is parallel to p, since an infinite line
// which is not parallel to a plane always crosses it.
func (p Plane[T]) DistanceLine(l Line3[T]) T {
	if !p.ApproxParallelLine(l) {
		return 0
	}
	return p.Distance(l.Point)
}

// DistanceRay is zero if r reaches p and the distance to its origin
// otherwise.
func (p Plane[T]) DistanceRay(r Ray3[T]) T {
	if p.ApproxIntersectsRay(r) {
		return 0
	}
	return p.Distance(r.Origin)
}

func (p Plane[T]) DistanceSegment(s Segment3[T]) T {
	if p.ApproxIntersectsSegment(s) {
		return 0
	}
	return num.Min(p.Distance(s.Start), p.Distance(s.End))
}

func (p Plane[T]) DistanceTriangle(t Triangle3[T]) T {
	if p.ApproxIntersectsTriangle(t) {
		return 0
	}
	return num.Min(p.Distance(t.Vertices[0]),
		num.Min(p.Distance(t.Vertices[1]), p.Distance(t.Vertices[2])))
}

// ApproxParallelLine returns true if l runs parallel to p, including when l
// lies inside p.
func (p Plane[T]) ApproxParallelLine(l Line3[T]) bool {
	return num.ApproxZero(l.Direction.Dot(p.Normal))
}

func (p Plane[T]) ApproxParallelRay(r Ray3[T]) bool {
	return num.ApproxZero(r.Direction.Dot(p.Normal))
}

func (p Plane[T]) ApproxParallelSegment(s Segment3[T]) bool {
	return num.ApproxZero(s.Direction().Dot(p.Normal))
}

func (p Plane[T]) ApproxParallelPlane(o Plane[T]) bool {
	return p.Normal.Cross(o.Normal).ApproxZero()
}

// ApproxPerpendicularLine returns true if l runs along p's normal.
func (p Plane[T]) ApproxPerpendicularLine(l Line3[T]) bool {
	return l.Direction.Cross(p.Normal).ApproxZero()
}

func (p Plane[T]) ApproxPerpendicularRay(r Ray3[T]) bool {
	return r.Direction.Cross(p.Normal).ApproxZero()
}

func (p Plane[T]) ApproxPerpendicularSegment(s Segment3[T]) bool {
	return s.Direction().Cross(p.Normal).ApproxZero()
}

func (p Plane[T]) ApproxPerpendicularPlane(o Plane[T]) bool {
	return num.ApproxZero(p.Normal.Dot(o.Normal))
}

// ApproxCoincident returns true if p and o are the same set of points,
// regardless of which way their normals face.
func (p Plane[T]) ApproxCoincident(o Plane[T]) bool {
	return p.ApproxParallelPlane(o) && p.ApproxContains(o.Origin)
}

// intersectLinear intersects p with a line, ray or segment. contained is
// true if l lies inside p, in which case there is no single intersection
// point and ok is false.
func (p Plane[T]) intersectLinear(l linear[T]) (pt vec.Vec3[T], ok, contained bool) {
	if num.ApproxZero(l.d.Normalize().Dot(p.Normal)) {
		return vec.Vec3[T]{}, false, p.ApproxContains(l.p)
	}

	t := p.Origin.Sub(l.p).Dot(p.Normal) / l.d.Dot(p.Normal)
	pt = l.at(t)
	if !l.approxContains(pt) {
		return vec.Vec3[T]{}, false, false
	}
	return pt, true, false
}

// IntersectionLine returns the point where l crosses p. ok is false if l is
// parallel to p, whether or not l lies inside p.
func (p Plane[T]) IntersectionLine(l Line3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := p.intersectLinear(l.linear())
	return pt, ok
}

func (p Plane[T]) IntersectionRay(r Ray3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := p.intersectLinear(r.linear())
	return pt, ok
}

func (p Plane[T]) IntersectionSegment(s Segment3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := p.intersectLinear(s.linear())
	return pt, ok
}

// ApproxIntersectsLine returns true if l crosses p or lies inside it.
func (p Plane[T]) ApproxIntersectsLine(l Line3[T]) bool {
	_, ok, contained := p.intersectLinear(l.linear())
	return ok || contained
}

func (p Plane[T]) ApproxIntersectsRay(r Ray3[T]) bool {
	_, ok, contained := p.intersectLinear(r.linear())
	return ok || contained
}

func (p Plane[T]) ApproxIntersectsSegment(s Segment3[T]) bool {
	_, ok, contained := p.intersectLinear(s.linear())
	return ok || contained
}

// ApproxIntersectsTriangle returns true if t touches p or has vertices on
// both sides of it.
func (p Plane[T]) ApproxIntersectsTriangle(t Triangle3[T]) bool {
	var above, below bool
	for _, v := range t.Vertices {
		d := p.SignedDistance(v)
		if num.ApproxZero(d) {
			return true
		} else if d > 0 {
			above = true
		} else {
			below = true
		}
	}
	return above && below
}

// ApproxIntersectsPlane returns true unless p and o are parallel and
// distinct.
func (p Plane[T]) ApproxIntersectsPlane(o Plane[T]) bool {
	return !p.ApproxParallelPlane(o) || p.ApproxContains(o.Origin)
}

// IntersectionPlane returns the line where p and o meet. ok is false if the
// planes are parallel. The line's point is the point on it closest to the
// coordinate origin.
func (p Plane[T]) IntersectionPlane(o Plane[T]) (Line3[T], bool) {
	dir := p.Normal.Cross(o.Normal)
	if dir.ApproxZero() {
		return Line3[T]{}, false
	}

	// Rows are the two plane equations and the constraint dir . x = 0.
	m := mat.NewMatrix([]T{
		p.Normal.X, p.Normal.Y, p.Normal.Z,
		o.Normal.X, o.Normal.Y, o.Normal.Z,
		dir.X, dir.Y, dir.Z,
	}, 3, 3)
	bs := []T{p.Normal.Dot(p.Origin), o.Normal.Dot(o.Origin), 0}

	xs, ok := mat.Solve(m, bs)
	if !ok {
		return Line3[T]{}, false
	}
	return Line3[T]{vec.New(xs[0], xs[1], xs[2]), dir.Normalize()}, true
}

// ProjectPoint returns the point on p closest to pt.
func (p Plane[T]) ProjectPoint(pt vec.Vec3[T]) vec.Vec3[T] {
	return pt.Sub(p.Normal.Scale(p.SignedDistance(pt)))
}

func (p Plane[T]) Translate(by vec.Vec3[T]) Plane[T] {
	return Plane[T]{p.Origin.Translate(by), p.Normal}
}

// Scaling and shearing move the normal by the inverse transpose of the map,
// which keeps it perpendicular to every transformed direction in the plane.

func (p Plane[T]) ScaleAt(origin, factor vec.Vec3[T]) Plane[T] {
	return Plane[T]{p.Origin.ScaleAt(origin, factor), p.Normal.Div(factor).Normalize()}
}

func (p Plane[T]) Scale(factor vec.Vec3[T]) Plane[T] {
	return Plane[T]{p.Origin.ScaleBy(factor), p.Normal.Div(factor).Normalize()}
}

func (p Plane[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Plane[T] {
	return Plane[T]{p.Origin.RotateAxisAngle(axis, angle), p.Normal.RotateAxisAngle(axis, angle)}
}

func (p Plane[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Plane[T] {
	return Plane[T]{p.Origin.RotateAxisAngleAt(origin, axis, angle), p.Normal.RotateAxisAngle(axis, angle)}
}

func (p Plane[T]) RotateQuaternion(q vec.Quat[T]) Plane[T] {
	return Plane[T]{p.Origin.RotateQuaternion(q), p.Normal.RotateQuaternion(q)}
}

func (p Plane[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Plane[T] {
	return Plane[T]{p.Origin.RotateQuaternionAt(origin, q), p.Normal.RotateQuaternion(q)}
}

func shearXNormal[T num.Real](n vec.Vec3[T], fy, fz T) vec.Vec3[T] {
	return vec.New(n.X-fy*n.Y-fz*n.Z, n.Y, n.Z).Normalize()
}

func shearYNormal[T num.Real](n vec.Vec3[T], fx, fz T) vec.Vec3[T] {
	return vec.New(n.X, n.Y-fx*n.X-fz*n.Z, n.Z).Normalize()
}

func shearZNormal[T num.Real](n vec.Vec3[T], fx, fy T) vec.Vec3[T] {
	return vec.New(n.X, n.Y, n.Z-fx*n.X-fy*n.Y).Normalize()
}

func (p Plane[T]) ShearX(fy, fz T) Plane[T] {
	return Plane[T]{p.Origin.ShearX(fy, fz), shearXNormal(p.Normal, fy, fz)}
}

func (p Plane[T]) ShearXAt(origin vec.Vec3[T], fy, fz T) Plane[T] {
	return Plane[T]{p.Origin.ShearXAt(origin, fy, fz), shearXNormal(p.Normal, fy, fz)}
}

func (p Plane[T]) ShearY(fx, fz T) Plane[T] {
	return Plane[T]{p.Origin.ShearY(fx, fz), shearYNormal(p.Normal, fx, fz)}
}

func (p Plane[T]) ShearYAt(origin vec.Vec3[T], fx, fz T) Plane[T] {
	return Plane[T]{p.Origin.ShearYAt(origin, fx, fz), shearYNormal(p.Normal, fx, fz)}
}

func (p Plane[T]) ShearZ(fx, fy T) Plane[T] {
	return Plane[T]{p.Origin.ShearZ(fx, fy), shearZNormal(p.Normal, fx, fy)}
}

func (p Plane[T]) ShearZAt(origin vec.Vec3[T], fx, fy T) Plane[T] {
	return Plane[T]{p.Origin.ShearZAt(origin, fx, fy), shearZNormal(p.Normal, fx, fy)}
}

func (p Plane[T]) Equal(o Plane[T]) bool { return p == o }

func (p Plane[T]) ApproxEqual(o Plane[T]) bool {
	return p.Origin.ApproxEqual(o.Origin) && p.Normal.ApproxEqual(o.Normal)
}

func (p Plane[T]) Less(o Plane[T]) bool {
	if p.Origin != o.Origin {
		return p.Origin.Less(o.Origin)
	}
	return p.Normal.Less(o.Normal)
}
