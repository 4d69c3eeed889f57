package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Sphere is the solid ball of points within Radius of Center. A sphere with
// zero radius behaves as a single point.
type Sphere[T num.Real] struct {
	Center vec.Vec3[T]
	Radius T
}

func (s Sphere[T]) Volume() T {
	return 4 * num.Pi[T]() * s.Radius * s.Radius * s.Radius / 3
}

func (s Sphere[T]) SurfaceArea() T { return 4 * num.Pi[T]() * s.Radius * s.Radius }

func (s Sphere[T]) ApproxContains(p vec.Vec3[T]) bool {
	return num.ApproxLessOrEqual(s.Center.DistanceSqrd(p), s.Radius*s.Radius)
}

// SignedDistance is negative inside the sphere.
func (s Sphere[T]) SignedDistance(p vec.Vec3[T]) T {
	return s.Center.Distance(p) - s.Radius
}

// Distance returns the distance from p to the sphere, which is zero for
// points inside it.
func (s Sphere[T]) Distance(p vec.Vec3[T]) T {
	return num.Max(0, s.SignedDistance(p))
}

func (s Sphere[T]) outside(d T) T { return num.Max(0, d-s.Radius) }

func (s Sphere[T]) DistanceLine(l Line3[T]) T         { return s.outside(l.Distance(s.Center)) }
func (s Sphere[T]) DistanceRay(r Ray3[T]) T           { return s.outside(r.Distance(s.Center)) }
func (s Sphere[T]) DistanceSegment(seg Segment3[T]) T { return s.outside(seg.Distance(s.Center)) }
func (s Sphere[T]) DistancePlane(p Plane[T]) T        { return s.outside(p.Distance(s.Center)) }

func (s Sphere[T]) DistanceSphere(o Sphere[T]) T {
	return num.Max(0, s.Center.Distance(o.Center)-s.Radius-o.Radius)
}

func (s Sphere[T]) reaches(d T) bool { return num.ApproxLessOrEqual(d, s.Radius) }

// ApproxIntersectsLine returns true if l meets the sphere. This is exactly
// when SurfaceIntersectionsLine is non-empty.
func (s Sphere[T]) ApproxIntersectsLine(l Line3[T]) bool {
	_, n, _, _ := s.surfaceRoots(l.linear())
	return n > 0
}

func (s Sphere[T]) ApproxIntersectsRay(r Ray3[T]) bool { return s.reaches(r.Distance(s.Center)) }

func (s Sphere[T]) ApproxIntersectsSegment(seg Segment3[T]) bool {
	return s.reaches(seg.Distance(s.Center))
}

func (s Sphere[T]) ApproxIntersectsPlane(p Plane[T]) bool { return s.reaches(p.Distance(s.Center)) }

func (s Sphere[T]) ApproxIntersectsTriangle(t Triangle3[T]) bool {
	return s.reaches(t.Distance(s.Center))
}

func (s Sphere[T]) ApproxIntersectsSphere(o Sphere[T]) bool {
	return num.ApproxLessOrEqual(s.Center.Distance(o.Center), s.Radius+o.Radius)
}

// surfaceRoots solves |p + t*u - Center|^2 = Radius^2 for the unit direction
// u along l. Roots are returned in arc length along l, together with l's
// domain converted to the same units. n is the number of roots. tangent is
// true if l only grazes the surface.
//
// The root count is decided by the distance h from Center to the infinite
// line, compared with reaches, so that it always agrees with
// ApproxIntersectsLine. Roots are tc +/- sqrt(Radius^2 - h^2) around the
// closest approach tc.
func (s Sphere[T]) surfaceRoots(l linear[T]) (ts [2]T, n int, dom interval[T], tangent bool) {
	length := l.d.Length()
	if length == 0 {
		dom = interval[T]{0, 0}
		if num.ApproxEqual(s.Center.Distance(l.p), s.Radius) {
			return ts, 1, dom, true
		}
		return ts, 0, dom, false
	}

	u := l.d.Scale(1 / length)
	dom = interval[T]{l.dom.lo * length, l.dom.hi * length}

	d := l.p.Sub(s.Center)
	tc := -d.Dot(u)
	h := d.Add(u.Scale(tc)).Length()

	switch {
	case !s.reaches(h):
		return ts, 0, dom, false
	case num.ApproxEqual(h, s.Radius):
		ts[0] = tc
		return ts, 1, dom, true
	}

	half := num.Sqrt(num.Max(0, s.Radius*s.Radius-h*h))
	ts[0], ts[1] = tc-half, tc+half
	return ts, 2, dom, false
}

func inDomain[T num.Real](t T, dom interval[T]) bool {
	return num.ApproxGreaterOrEqual(t, dom.lo) && num.ApproxLessOrEqual(t, dom.hi)
}

func (s Sphere[T]) surfaceIntersections(l linear[T]) Intersections3[T] {
	var out Intersections3[T]
	ts, n, dom, _ := s.surfaceRoots(l)
	if n == 0 {
		return out
	}

	u := l.d.Normalize()
	for i := 0; i < n; i++ {
		if inDomain(ts[i], dom) {
			out.Insert(l.p.Add(u.Scale(ts[i])))
		}
	}
	return out
}

func (s Sphere[T]) approxTangent(l linear[T]) bool {
	ts, _, dom, tangent := s.surfaceRoots(l)
	return tangent && inDomain(ts[0], dom)
}

// SurfaceIntersectionsLine returns the points where l crosses the surface of
// s, in order along l.Direction.
func (s Sphere[T]) SurfaceIntersectionsLine(l Line3[T]) Intersections3[T] {
	return s.surfaceIntersections(l.linear())
}

// SurfaceIntersectionsRay returns the surface points at or in front of the
// ray's origin.
func (s Sphere[T]) SurfaceIntersectionsRay(r Ray3[T]) Intersections3[T] {
	return s.surfaceIntersections(r.linear())
}

func (s Sphere[T]) SurfaceIntersectionsSegment(seg Segment3[T]) Intersections3[T] {
	return s.surfaceIntersections(seg.linear())
}

// ApproxTangentLine returns true if l touches the surface at exactly one
// point.
func (s Sphere[T]) ApproxTangentLine(l Line3[T]) bool { return s.approxTangent(l.linear()) }
func (s Sphere[T]) ApproxTangentRay(r Ray3[T]) bool   { return s.approxTangent(r.linear()) }

func (s Sphere[T]) ApproxTangentSegment(seg Segment3[T]) bool {
	return s.approxTangent(seg.linear())
}

// IntersectDepth returns the shortest translation which moves s out of o.
// It points from o's center to s's center, or along +x if the centers
// coincide. ok is false if the spheres do not overlap.
func (s Sphere[T]) IntersectDepth(o Sphere[T]) (vec.Vec3[T], bool) {
	axis := s.Center.Sub(o.Center)
	depth := s.Radius + o.Radius - axis.Length()
	if !num.ApproxGreaterZero(depth) {
		return vec.Vec3[T]{}, false
	}

	if axis.ApproxZero() {
		axis = vec.AxisX[T]()
	}
	return axis.Normalize().Scale(depth), true
}

func (s Sphere[T]) Translate(by vec.Vec3[T]) Sphere[T] {
	return Sphere[T]{s.Center.Translate(by), s.Radius}
}

// ScaleAt scales s uniformly about origin.
func (s Sphere[T]) ScaleAt(origin vec.Vec3[T], factor T) Sphere[T] {
	f := vec.New(factor, factor, factor)
	return Sphere[T]{s.Center.ScaleAt(origin, f), s.Radius * num.Abs(factor)}
}

func (s Sphere[T]) Scale(factor T) Sphere[T] {
	return s.ScaleAt(vec.Zero[T](), factor)
}

func (s Sphere[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Sphere[T] {
	return Sphere[T]{s.Center.RotateAxisAngle(axis, angle), s.Radius}
}

func (s Sphere[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Sphere[T] {
	return Sphere[T]{s.Center.RotateAxisAngleAt(origin, axis, angle), s.Radius}
}

func (s Sphere[T]) RotateQuaternion(q vec.Quat[T]) Sphere[T] {
	return Sphere[T]{s.Center.RotateQuaternion(q), s.Radius}
}

func (s Sphere[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Sphere[T] {
	return Sphere[T]{s.Center.RotateQuaternionAt(origin, q), s.Radius}
}

func (s Sphere[T]) Equal(o Sphere[T]) bool { return s == o }

func (s Sphere[T]) ApproxEqual(o Sphere[T]) bool {
	return s.Center.ApproxEqual(o.Center) && num.ApproxEqual(s.Radius, o.Radius)
}

func (s Sphere[T]) Less(o Sphere[T]) bool {
	if s.Center != o.Center {
		return s.Center.Less(o.Center)
	}
	return s.Radius < o.Radius
}
