package io

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Result is the answer to a single point-versus-shape query. Shape is the
// index of the shape in the order Evaluate visits them, and Closest is the
// point on the shape closest to Point.
type Result struct {
	Point    [3]float64
	Kind     string
	Name     string
	Shape    int
	Contains bool
	Distance float64
	Closest  [3]float64
}

func toArray[T num.Real](v vec.Vec3[T]) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func newResult[T num.Real](
	p vec.Vec3[T], kind, name string, contains bool, dist T, closest vec.Vec3[T],
) Result {
	return Result{
		Point: toArray(p), Kind: kind, Name: name,
		Contains: contains, Distance: float64(dist), Closest: toArray(closest),
	}
}

// Evaluate tests every point against every shape. Results are grouped by
// point, and within a point ordered by shape kind and then name.
func Evaluate[T num.Real](s *Shapes[T], pts []vec.Vec3[T]) []Result {
	out := make([]Result, 0, len(pts)*s.Len())

	for _, p := range pts {
		for _, sph := range s.Spheres {
			c := sph.Shape
			closest := p
			if !c.ApproxContains(p) {
				closest = c.Center.Add(p.Sub(c.Center).Normalize().Scale(c.Radius))
			}
			out = append(out, newResult(p, "Sphere", sph.Name,
				c.ApproxContains(p), c.Distance(p), closest))
		}
		for _, pl := range s.Planes {
			out = append(out, newResult(p, "Plane", pl.Name,
				pl.Shape.ApproxContains(p), pl.Shape.Distance(p), pl.Shape.ProjectPoint(p)))
		}
		for _, l := range s.Lines {
			out = append(out, newResult(p, "Line", l.Name,
				l.Shape.ApproxContains(p), l.Shape.Distance(p), l.Shape.ProjectPoint(p)))
		}
		for _, r := range s.Rays {
			out = append(out, newResult(p, "Ray", r.Name,
				r.Shape.ApproxContains(p), r.Shape.Distance(p), r.Shape.ProjectPoint(p)))
		}
		for _, seg := range s.Segments {
			out = append(out, newResult(p, "Segment", seg.Name,
				seg.Shape.ApproxContains(p), seg.Shape.Distance(p), seg.Shape.ProjectPoint(p)))
		}
		for _, tri := range s.Triangles {
			out = append(out, newResult(p, "Triangle", tri.Name,
				tri.Shape.ApproxContains(p), tri.Shape.Distance(p), tri.Shape.ProjectPoint(p)))
		}
	}

	for i := range out {
		out[i].Shape = i % s.Len()
	}

	return out
}

// Len returns the total number of shapes.
func (s *Shapes[T]) Len() int {
	return len(s.Spheres) + len(s.Planes) + len(s.Lines) +
		len(s.Rays) + len(s.Segments) + len(s.Triangles)
}
