package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Triangle3 is the region bounded by three vertices. Edge i runs from
// Vertices[i] to Vertices[(i+1)%3]. A triangle whose vertices are collinear
// is degenerate and has no circumcenter, incenter, orthocenter, plane, or
// barycentric coordinates.
type Triangle3[T num.Real] struct {
	Vertices [3]vec.Vec3[T]
}

func NewTriangle3[T num.Real](a, b, c vec.Vec3[T]) Triangle3[T] {
	return Triangle3[T]{[3]vec.Vec3[T]{a, b, c}}
}

func checkVertexIndex(i int) {
	if i < 0 || i > 2 {
		panic("triangle index must be 0, 1, or 2.")
	}
}

// Edge returns the segment from vertex i to vertex (i+1)%3.
func (t Triangle3[T]) Edge(i int) Segment3[T] {
	checkVertexIndex(i)
	return Segment3[T]{t.Vertices[i], t.Vertices[(i+1)%3]}
}

// cross returns (v1 - v0) x (v2 - v0), whose length is twice the area.
func (t Triangle3[T]) cross() vec.Vec3[T] {
	v := &t.Vertices
	return v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
}

// ApproxCollinear returns true if the triangle is degenerate.
func (t Triangle3[T]) ApproxCollinear() bool {
	return approxCollinearPoints(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

func (t Triangle3[T]) Area() T { return t.cross().Length() / 2 }

func (t Triangle3[T]) Perimeter() T {
	return t.Edge(0).Length() + t.Edge(1).Length() + t.Edge(2).Length()
}

// Normal returns the unit normal given by the right-hand rule. It is the
// zero vector for a degenerate triangle.
func (t Triangle3[T]) Normal() vec.Vec3[T] { return t.cross().Normalize() }

func (t Triangle3[T]) Plane() (Plane[T], bool) { return PlaneFromTriangle(t) }

func (t Triangle3[T]) Centroid() vec.Vec3[T] {
	v := &t.Vertices
	return v[0].Add(v[1]).Add(v[2]).Scale(T(1) / 3)
}

// Circumcenter returns the center of the circle through all three vertices.
func (t Triangle3[T]) Circumcenter() (vec.Vec3[T], bool) {
	if t.ApproxCollinear() {
		return vec.Vec3[T]{}, false
	}

	v := &t.Vertices
	a, b := v[0].Sub(v[2]), v[1].Sub(v[2])
	axb := a.Cross(b)

	n := b.Scale(a.LengthSqrd()).Sub(a.Scale(b.LengthSqrd())).Cross(axb)
	return v[2].Add(n.Scale(1 / (2 * axb.LengthSqrd()))), true
}

// Incenter returns the center of the inscribed circle: the average of the
// vertices weighted by the lengths of the opposite edges.
func (t Triangle3[T]) Incenter() (vec.Vec3[T], bool) {
	if t.ApproxCollinear() {
		return vec.Vec3[T]{}, false
	}

	v := &t.Vertices
	l0 := v[1].Distance(v[2])
	l1 := v[2].Distance(v[0])
	l2 := v[0].Distance(v[1])

	sum := v[0].Scale(l0).Add(v[1].Scale(l1)).Add(v[2].Scale(l2))
	return sum.Scale(1 / (l0 + l1 + l2)), true
}

// Orthocenter returns the point where the three altitudes meet. It lies on
// the Euler line: H = v0 + v1 + v2 - 2*circumcenter.
func (t Triangle3[T]) Orthocenter() (vec.Vec3[T], bool) {
	c, ok := t.Circumcenter()
	if !ok {
		return vec.Vec3[T]{}, false
	}
	v := &t.Vertices
	return v[0].Add(v[1]).Add(v[2]).Sub(c.Scale(2)), true
}

// Angle returns the interior angle at vertex i in radians.
func (t Triangle3[T]) Angle(i int) T {
	checkVertexIndex(i)
	v := &t.Vertices
	return v[(i+1)%3].Sub(v[i]).Angle(v[(i+2)%3].Sub(v[i]))
}

// opposite returns the edge across from vertex i.
func (t Triangle3[T]) opposite(i int) Segment3[T] { return t.Edge((i + 1) % 3) }

// Median returns the segment from vertex i to the midpoint of the opposite
// edge.
func (t Triangle3[T]) Median(i int) Segment3[T] {
	checkVertexIndex(i)
	return Segment3[T]{t.Vertices[i], t.opposite(i).Midpoint()}
}

// PerpendicularBisector returns the line in the triangle's plane which
// passes through the midpoint of edge i at a right angle.
func (t Triangle3[T]) PerpendicularBisector(i int) (Line3[T], bool) {
	checkVertexIndex(i)
	if t.ApproxCollinear() {
		return Line3[T]{}, false
	}
	e := t.Edge(i)
	dir := t.Normal().Cross(e.Direction()).Normalize()
	return Line3[T]{e.Midpoint(), dir}, true
}

// AngleBisector returns the segment which splits the angle at vertex i in
// two, ending on the opposite edge.
func (t Triangle3[T]) AngleBisector(i int) (Segment3[T], bool) {
	checkVertexIndex(i)
	if t.ApproxCollinear() {
		return Segment3[T]{}, false
	}

	v := &t.Vertices
	p, q := v[(i+1)%3], v[(i+2)%3]
	lp, lq := v[i].Distance(p), v[i].Distance(q)
	// The bisector splits the opposite edge in the ratio of the adjacent
	// edges.
	return Segment3[T]{v[i], p.Lerp(q, lp/(lp+lq))}, true
}

// Altitude returns the segment from vertex i to the foot of the
// perpendicular on the line through the opposite edge.
func (t Triangle3[T]) Altitude(i int) (Segment3[T], bool) {
	checkVertexIndex(i)
	if t.ApproxCollinear() {
		return Segment3[T]{}, false
	}
	foot := LineFromSegment(t.opposite(i)).ProjectPoint(t.Vertices[i])
	return Segment3[T]{t.Vertices[i], foot}, true
}

// Barycentric returns the weights (w0, w1, w2) for which
// w0*v0 + w1*v1 + w2*v2 is the projection of p onto the triangle's plane.
// The weights sum to one.
func (t Triangle3[T]) Barycentric(p vec.Vec3[T]) (vec.Vec3[T], bool) {
	if t.ApproxCollinear() {
		return vec.Vec3[T]{}, false
	}
	return t.BarycentricUnchecked(p), true
}

// BarycentricUnchecked is Barycentric without the degeneracy check. It
// returns NaNs or infinities for degenerate triangles.
func (t Triangle3[T]) BarycentricUnchecked(p vec.Vec3[T]) vec.Vec3[T] {
	v := &t.Vertices
	v0, v1, v2 := v[1].Sub(v[0]), v[2].Sub(v[0]), p.Sub(v[0])

	d00, d01, d11 := v0.Dot(v0), v0.Dot(v1), v1.Dot(v1)
	d20, d21 := v2.Dot(v0), v2.Dot(v1)
	denom := d00*d11 - d01*d01

	w1 := (d11*d20 - d01*d21) / denom
	w2 := (d00*d21 - d01*d20) / denom
	return vec.New(1-w1-w2, w1, w2)
}

// FromBarycentric returns w.X*v0 + w.Y*v1 + w.Z*v2.
func (t Triangle3[T]) FromBarycentric(w vec.Vec3[T]) vec.Vec3[T] {
	v := &t.Vertices
	return v[0].Scale(w.X).Add(v[1].Scale(w.Y)).Add(v[2].Scale(w.Z))
}

func baryInside[T num.Real](w T) bool {
	return num.ApproxGreaterOrEqual(w, 0) && num.ApproxLessOrEqual(w, 1)
}

// ContainsProjected returns true if the projection of p onto the triangle's
// plane lies inside the triangle.
func (t Triangle3[T]) ContainsProjected(p vec.Vec3[T]) bool {
	w, ok := t.Barycentric(p)
	if !ok {
		return false
	}
	return baryInside(w.X) && baryInside(w.Y) && baryInside(w.Z)
}

// ApproxContains returns true if p lies on the triangle. A degenerate
// triangle contains the points of its edges.
func (t Triangle3[T]) ApproxContains(p vec.Vec3[T]) bool {
	plane, ok := t.Plane()
	if !ok {
		for i := 0; i < 3; i++ {
			if t.Edge(i).ApproxContains(p) {
				return true
			}
		}
		return false
	}
	return plane.ApproxContains(p) && t.ContainsProjected(p)
}

// ProjectPoint returns the point on the triangle closest to p.
func (t Triangle3[T]) ProjectPoint(p vec.Vec3[T]) vec.Vec3[T] {
	if plane, ok := t.Plane(); ok {
		proj := plane.ProjectPoint(p)
		if t.ContainsProjected(proj) {
			return proj
		}
	}

	best := t.Edge(0).ProjectPoint(p)
	for i := 1; i < 3; i++ {
		q := t.Edge(i).ProjectPoint(p)
		if q.DistanceSqrd(p) < best.DistanceSqrd(p) {
			best = q
		}
	}
	return best
}

func (t Triangle3[T]) Distance(p vec.Vec3[T]) T { return t.ProjectPoint(p).Distance(p) }

func (t Triangle3[T]) longestEdge() Segment3[T] {
	best := t.Edge(0)
	for i := 1; i < 3; i++ {
		if e := t.Edge(i); e.LengthSqrd() > best.LengthSqrd() {
			best = e
		}
	}
	return best
}

func (t Triangle3[T]) approxCoplanarLinear(l linear[T]) bool {
	plane, ok := t.Plane()
	if !ok {
		return t.longestEdge().linear().approxCoplanar(l)
	}
	return num.ApproxZero(l.d.Normalize().Dot(plane.Normal)) && plane.ApproxContains(l.p)
}

func (t Triangle3[T]) ApproxCoplanarLine(l Line3[T]) bool {
	return t.approxCoplanarLinear(l.linear())
}

func (t Triangle3[T]) ApproxCoplanarRay(r Ray3[T]) bool {
	return t.approxCoplanarLinear(r.linear())
}

func (t Triangle3[T]) ApproxCoplanarSegment(s Segment3[T]) bool {
	return t.approxCoplanarLinear(s.linear())
}

// ApproxCoplanarTriangle returns true if all six vertices lie in a common
// plane.
func (t Triangle3[T]) ApproxCoplanarTriangle(o Triangle3[T]) bool {
	if plane, ok := t.Plane(); ok {
		return plane.ApproxContains(o.Vertices[0]) &&
			plane.ApproxContains(o.Vertices[1]) &&
			plane.ApproxContains(o.Vertices[2])
	} else if plane, ok := o.Plane(); ok {
		return plane.ApproxContains(t.Vertices[0]) &&
			plane.ApproxContains(t.Vertices[1]) &&
			plane.ApproxContains(t.Vertices[2])
	}
	return t.longestEdge().ApproxCoplanar(o.longestEdge())
}

func appendUnique[T num.Real](pts []vec.Vec3[T], p vec.Vec3[T]) []vec.Vec3[T] {
	for i := range pts {
		if pts[i].ApproxEqual(p) {
			return pts
		}
	}
	return append(pts, p)
}

// contacts returns the distinct points where l meets t. When l crosses the
// triangle's plane this is at most one point. When l lies in the plane the
// contact set is a segment and contacts returns its ends.
func (t Triangle3[T]) contacts(l linear[T], pts []vec.Vec3[T]) []vec.Vec3[T] {
	if plane, ok := t.Plane(); ok {
		pt, hit, inside := plane.intersectLinear(l)
		if hit {
			if t.ContainsProjected(pt) {
				pts = appendUnique(pts, pt)
			}
			return pts
		} else if !inside {
			return pts
		}
	}

	for i := 0; i < 3; i++ {
		e := t.Edge(i).linear()
		if !e.d.ApproxZero() && !l.d.ApproxZero() && e.approxCollinear(l) {
			if lo, hi, ok := e.collinearOverlap(l); ok {
				pts = appendUnique(pts, e.at(lo))
				pts = appendUnique(pts, e.at(hi))
			}
		} else if pt, ok, _ := e.intersection(l); ok {
			pts = appendUnique(pts, pt)
		}
	}

	for _, s := range l.dom.bounds() {
		if end := l.at(s); t.ApproxContains(end) {
			pts = appendUnique(pts, end)
		}
	}
	return pts
}

// intersectLinear returns the single point where l meets t. overlap is true
// if l lies in the triangle's plane and shares more than one point with it.
func (t Triangle3[T]) intersectLinear(l linear[T]) (pt vec.Vec3[T], ok, overlap bool) {
	var buf [4]vec.Vec3[T]
	pts := t.contacts(l, buf[:0])
	switch len(pts) {
	case 0:
		return vec.Vec3[T]{}, false, false
	case 1:
		return pts[0], true, false
	}
	return vec.Vec3[T]{}, false, true
}

// IntersectionLine returns the point where l meets t. ok is false if they do
// not meet or if l lies in the triangle's plane and crosses its interior.
func (t Triangle3[T]) IntersectionLine(l Line3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := t.intersectLinear(l.linear())
	return pt, ok
}

func (t Triangle3[T]) IntersectionRay(r Ray3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := t.intersectLinear(r.linear())
	return pt, ok
}

func (t Triangle3[T]) IntersectionSegment(s Segment3[T]) (vec.Vec3[T], bool) {
	pt, ok, _ := t.intersectLinear(s.linear())
	return pt, ok
}

func (t Triangle3[T]) ApproxIntersectsLine(l Line3[T]) bool {
	_, ok, overlap := t.intersectLinear(l.linear())
	return ok || overlap
}

func (t Triangle3[T]) ApproxIntersectsRay(r Ray3[T]) bool {
	_, ok, overlap := t.intersectLinear(r.linear())
	return ok || overlap
}

func (t Triangle3[T]) ApproxIntersectsSegment(s Segment3[T]) bool {
	_, ok, overlap := t.intersectLinear(s.linear())
	return ok || overlap
}

// triangleContacts collects the points where an edge of one triangle meets
// the other triangle. The ends of the overlap of two triangles are always
// among them.
func (t Triangle3[T]) triangleContacts(o Triangle3[T]) []vec.Vec3[T] {
	pts := make([]vec.Vec3[T], 0, 12)
	for i := 0; i < 3; i++ {
		pts = o.contacts(t.Edge(i).linear(), pts)
		pts = t.contacts(o.Edge(i).linear(), pts)
	}
	return pts
}

// ApproxIntersectsTriangle returns true if t and o share at least one point.
func (t Triangle3[T]) ApproxIntersectsTriangle(o Triangle3[T]) bool {
	return len(t.triangleContacts(o)) > 0
}

// IntersectionTriangle returns the segment along which t and o overlap. For
// triangles in different planes this lies on the line where the planes meet.
// If the triangles only touch at a point, Start and End are equal. ok is
// false if they do not meet or if they are coplanar and overlap in an area.
func (t Triangle3[T]) IntersectionTriangle(o Triangle3[T]) (Segment3[T], bool) {
	pts := t.triangleContacts(o)
	if len(pts) == 0 {
		return Segment3[T]{}, false
	}

	i0, i1 := 0, 0
	var maxDist T
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].DistanceSqrd(pts[j]); d > maxDist {
				i0, i1, maxDist = i, j, d
			}
		}
	}

	seg := Segment3[T]{pts[i0], pts[i1]}
	for i := range pts {
		if !seg.ApproxContains(pts[i]) {
			return Segment3[T]{}, false
		}
	}
	return seg, true
}

func (t Triangle3[T]) mapVertices(f func(vec.Vec3[T]) vec.Vec3[T]) Triangle3[T] {
	return NewTriangle3(f(t.Vertices[0]), f(t.Vertices[1]), f(t.Vertices[2]))
}

func (t Triangle3[T]) Translate(by vec.Vec3[T]) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.Translate(by) })
}

func (t Triangle3[T]) ScaleAt(origin, factor vec.Vec3[T]) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ScaleAt(origin, factor) })
}

func (t Triangle3[T]) Scale(factor vec.Vec3[T]) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ScaleBy(factor) })
}

func (t Triangle3[T]) RotateAxisAngle(axis vec.Vec3[T], angle T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.RotateAxisAngle(axis, angle) })
}

func (t Triangle3[T]) RotateAxisAngleAt(origin, axis vec.Vec3[T], angle T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] {
		return v.RotateAxisAngleAt(origin, axis, angle)
	})
}

func (t Triangle3[T]) RotateQuaternion(q vec.Quat[T]) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.RotateQuaternion(q) })
}

func (t Triangle3[T]) RotateQuaternionAt(origin vec.Vec3[T], q vec.Quat[T]) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.RotateQuaternionAt(origin, q) })
}

func (t Triangle3[T]) ShearX(fy, fz T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearX(fy, fz) })
}

func (t Triangle3[T]) ShearXAt(origin vec.Vec3[T], fy, fz T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearXAt(origin, fy, fz) })
}

func (t Triangle3[T]) ShearY(fx, fz T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearY(fx, fz) })
}

func (t Triangle3[T]) ShearYAt(origin vec.Vec3[T], fx, fz T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearYAt(origin, fx, fz) })
}

func (t Triangle3[T]) ShearZ(fx, fy T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearZ(fx, fy) })
}

func (t Triangle3[T]) ShearZAt(origin vec.Vec3[T], fx, fy T) Triangle3[T] {
	return t.mapVertices(func(v vec.Vec3[T]) vec.Vec3[T] { return v.ShearZAt(origin, fx, fy) })
}

func (t Triangle3[T]) Equal(o Triangle3[T]) bool { return t == o }

// ApproxEqual compares vertices in order; a rotated vertex order is a
// different triangle.
func (t Triangle3[T]) ApproxEqual(o Triangle3[T]) bool {
	for i := range t.Vertices {
		if !t.Vertices[i].ApproxEqual(o.Vertices[i]) {
			return false
		}
	}
	return true
}

func (t Triangle3[T]) Less(o Triangle3[T]) bool {
	for i := range t.Vertices {
		if t.Vertices[i] != o.Vertices[i] {
			return t.Vertices[i].Less(o.Vertices[i])
		}
	}
	return false
}
