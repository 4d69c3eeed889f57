package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The properties below are checked at several scales, since most
// tolerances are absolute near zero and relative away from it.
var scales = []float64{0.001, 1, 1000}

func tol(s float64) float64 { return 1e-8 * math.Max(1, s) }

// linearShapes returns Line3, Ray3 and Segment3 values of size s. Several of
// them cross at the origin or share endpoints, so that both the
// intersecting and the disjoint paths are taken.
func linearShapes(s float64) []any {
	return []any{
		LineFromPoints(v3(0, 0, 0), v3(s, 2*s, 3*s)),
		Line3[float64]{v3(s, 0, 0), v3(0, 1, 0)},
		Line3[float64]{v3(0, 0, s), v3(0, 0, 1)},
		Ray3[float64]{v3(s, -s, 0), v3(0, 1, 0)},
		RayFromPointToPoint(v3(0, 0, 0), v3(s, s, 0)),
		RayFromPointToPoint(v3(-s, -s, -s), v3(0, 0, 0)),
		Segment3[float64]{v3(0, 0, 0), v3(s, 0, 0)},
		Segment3[float64]{v3(-s, s, 0), v3(s, -s, 0)},
		Segment3[float64]{v3(0, 0, s), v3(s, s, s)},
		Segment3[float64]{v3(0, s, 0), v3(2*s, s, 0)},
	}
}

func queryPoints(s float64) []V {
	return []V{
		v3(0, 0, 0), v3(s, 2*s, -s), v3(-3*s, 0.5*s, s),
		v3(2*s, 0, 0), v3(0.25*s, 0.25*s, 5*s),
	}
}

// onShape returns points which lie on a linear shape.
func onShape(a any, s float64) []V {
	switch a := a.(type) {
	case Line3[float64]:
		return []V{a.PointAt(-s), a.PointAt(0), a.PointAt(2 * s)}
	case Ray3[float64]:
		return []V{a.PointAt(0), a.PointAt(s), a.PointAt(3 * s)}
	case Segment3[float64]:
		return []V{a.PointAt(0), a.PointAt(0.5), a.PointAt(1)}
	}
	panic("unknown shape")
}

func shapeContains(a any, p V) bool {
	switch a := a.(type) {
	case Line3[float64]:
		return a.ApproxContains(p)
	case Ray3[float64]:
		return a.ApproxContains(p)
	case Segment3[float64]:
		return a.ApproxContains(p)
	}
	panic("unknown shape")
}

func shapeDistance(a any, p V) float64 {
	switch a := a.(type) {
	case Line3[float64]:
		return a.Distance(p)
	case Ray3[float64]:
		return a.Distance(p)
	case Segment3[float64]:
		return a.Distance(p)
	}
	panic("unknown shape")
}

func shapeProject(a any, p V) V {
	switch a := a.(type) {
	case Line3[float64]:
		return a.ProjectPoint(p)
	case Ray3[float64]:
		return a.ProjectPoint(p)
	case Segment3[float64]:
		return a.ProjectPoint(p)
	}
	panic("unknown shape")
}

func pairDistance(a, b any) float64 {
	switch a := a.(type) {
	case Line3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.DistanceLine(b)
		case Ray3[float64]:
			return a.DistanceRay(b)
		case Segment3[float64]:
			return a.DistanceSegment(b)
		}
	case Ray3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.DistanceLine(b)
		case Ray3[float64]:
			return a.DistanceRay(b)
		case Segment3[float64]:
			return a.DistanceSegment(b)
		}
	case Segment3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.DistanceLine(b)
		case Ray3[float64]:
			return a.DistanceRay(b)
		case Segment3[float64]:
			return a.DistanceSegment(b)
		}
	}
	panic("unknown shape")
}

func pairIntersects(a, b any) bool {
	switch a := a.(type) {
	case Line3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectsLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectsRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectsSegment(b)
		}
	case Ray3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectsLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectsRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectsSegment(b)
		}
	case Segment3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectsLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectsRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectsSegment(b)
		}
	}
	panic("unknown shape")
}

func pairIntersection(a, b any) (V, bool) {
	switch a := a.(type) {
	case Line3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectionLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectionRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectionSegment(b)
		}
	case Ray3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectionLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectionRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectionSegment(b)
		}
	case Segment3[float64]:
		switch b := b.(type) {
		case Line3[float64]:
			return a.ApproxIntersectionLine(b)
		case Ray3[float64]:
			return a.ApproxIntersectionRay(b)
		case Segment3[float64]:
			return a.ApproxIntersectionSegment(b)
		}
	}
	panic("unknown shape")
}

func TestLinearPairSymmetry(t *testing.T) {
	for _, s := range scales {
		shapes := linearShapes(s)
		for i, a := range shapes {
			for j, b := range shapes {
				dab, dba := pairDistance(a, b), pairDistance(b, a)
				if math.Abs(dab-dba) > tol(s) {
					t.Errorf("scale %g, %d-%d) distance %g one way, %g the other",
						s, i, j, dab, dba)
				}
				if pairIntersects(a, b) != pairIntersects(b, a) {
					t.Errorf("scale %g, %d-%d) ApproxIntersects is not symmetric", s, i, j)
				}
			}
		}
	}
}

func TestLinearIntersectionOnBoth(t *testing.T) {
	for _, s := range scales {
		shapes := linearShapes(s)
		found := 0
		for i, a := range shapes {
			for j, b := range shapes {
				p, ok := pairIntersection(a, b)
				if !ok {
					continue
				}
				found++
				if !shapeContains(a, p) || !shapeContains(b, p) {
					t.Errorf("scale %g, %d-%d) intersection %v is not on both shapes",
						s, i, j, p)
				}
				if !pairIntersects(a, b) {
					t.Errorf("scale %g, %d-%d) intersection found but "+
						"ApproxIntersects is false", s, i, j)
				}
				if d := pairDistance(a, b); d > tol(s) {
					t.Errorf("scale %g, %d-%d) intersecting shapes are %g apart",
						s, i, j, d)
				}
			}
		}
		assert.NotZero(t, found, "scale %g", s)
	}
}

func TestLinearContainsImpliesZeroDistance(t *testing.T) {
	for _, s := range scales {
		for i, a := range linearShapes(s) {
			for _, p := range onShape(a, s) {
				if !shapeContains(a, p) {
					t.Errorf("scale %g, %d) %v does not contain its own point %v",
						s, i, a, p)
				}
				if d := shapeDistance(a, p); d > tol(s) {
					t.Errorf("scale %g, %d) contained point %v is %g away", s, i, p, d)
				}
			}
		}
	}
}

func TestLinearProjectIdempotent(t *testing.T) {
	for _, s := range scales {
		for i, a := range linearShapes(s) {
			for _, p := range queryPoints(s) {
				q := shapeProject(a, p)
				if !shapeContains(a, q) {
					t.Errorf("scale %g, %d) projection %v of %v is not contained",
						s, i, q, p)
				}
				if qq := shapeProject(a, q); !qq.ApproxEqual(q) {
					t.Errorf("scale %g, %d) projecting %v again gives %v", s, i, q, qq)
				}
				if math.Abs(shapeDistance(a, p)-p.Distance(q)) > tol(s) {
					t.Errorf("scale %g, %d) Distance(%v) disagrees with ProjectPoint",
						s, i, p)
				}
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range scales {
		l := Line3[float64]{v3(s, 0, 0), v3(0, 3*s, 4*s)}.Normalize()
		assert.InDelta(t, 1.0, l.Direction.Length(), 1e-12)
		assert.True(t, l.Normalize().ApproxEqual(l), "scale %g", s)

		r := Ray3[float64]{v3(0, s, 0), v3(-s, 0, s)}.Normalize()
		assert.InDelta(t, 1.0, r.Direction.Length(), 1e-12)
		assert.True(t, r.Normalize().ApproxEqual(r), "scale %g", s)

		p := Plane[float64]{v3(0, 0, s), v3(2*s, 0, 0)}.Normalize()
		assert.InDelta(t, 1.0, p.Normal.Length(), 1e-12)
		assert.True(t, p.Normalize().ApproxEqual(p), "scale %g", s)
	}
}

func TestTriangleProperties(t *testing.T) {
	for _, s := range scales {
		tris := []Triangle3[float64]{
			NewTriangle3(v3(0, 0, 0), v3(4*s, 0, 0), v3(0, 3*s, 0)),
			NewTriangle3(v3(s, 0, 0), v3(0, s, 0), v3(0, 0, s)),
		}

		for i, tri := range tris {
			if tri.ApproxCollinear() {
				t.Errorf("scale %g, %d) triangle is reported degenerate", s, i)
				continue
			}

			for _, w := range []V{v3(1, 0, 0), v3(0.2, 0.3, 0.5), v3(0, 0.5, 0.5)} {
				p := tri.FromBarycentric(w)
				if !tri.ApproxContains(p) {
					t.Errorf("scale %g, %d) %v is not contained", s, i, p)
				}
				if d := tri.Distance(p); d > tol(s) {
					t.Errorf("scale %g, %d) contained point %v is %g away", s, i, p, d)
				}
			}

			for _, p := range queryPoints(s) {
				q := tri.ProjectPoint(p)
				if !tri.ApproxContains(q) {
					t.Errorf("scale %g, %d) projection %v of %v is not contained",
						s, i, q, p)
				}
				if qq := tri.ProjectPoint(q); !qq.ApproxEqual(q) {
					t.Errorf("scale %g, %d) projecting %v again gives %v", s, i, q, qq)
				}
			}
		}
	}
}

func TestSphereSurfaceConsistency(t *testing.T) {
	factors := []float64{0, 0.5, 0.99999, 0.999999, 1, 1.000001, 1.00001, 1.0001, 2}

	for _, r := range scales {
		s := Sphere[float64]{v3(r, -r, 0), r}
		for _, f := range factors {
			l := Line3[float64]{v3(r, -r, f*r), v3(0.6, 0.8, 0)}
			hits := s.SurfaceIntersectionsLine(l)

			if s.ApproxIntersectsLine(l) == hits.Empty() {
				t.Errorf("r = %g, f = %g) ApproxIntersectsLine = %v with %d "+
					"surface points", r, f, s.ApproxIntersectsLine(l), hits.Size())
			}
			if s.ApproxTangentLine(l) && hits.Size() != 1 {
				t.Errorf("r = %g, f = %g) tangent line has %d surface points",
					r, f, hits.Size())
			}
			for _, p := range hits.Points() {
				if d := s.Center.Distance(p); math.Abs(d-r) > 2e-5*math.Max(1, r) {
					t.Errorf("r = %g, f = %g) surface point %v is %g from the center",
						r, f, p, d)
				}
				if !l.ApproxContains(p) {
					t.Errorf("r = %g, f = %g) surface point %v is not on the line",
						r, f, p)
				}
			}
		}
	}
}
