package io

import (
	"fmt"
	"io"

	"github.com/phil-mansfield/nnmath/geom"
	"github.com/phil-mansfield/nnmath/num"
)

// Crossing lists the points where a line, ray, or segment from the query
// file passes through the surface of one of its spheres.
type Crossing struct {
	Sphere  string
	Kind    string
	Name    string
	Tangent bool
	Points  [][3]float64
}

func newCrossing[T num.Real](
	sphere, kind, name string, tangent bool, hits geom.Intersections3[T],
) Crossing {
	c := Crossing{Sphere: sphere, Kind: kind, Name: name, Tangent: tangent}
	for _, p := range hits.Points() {
		c.Points = append(c.Points, toArray(p))
	}
	return c
}

// FindCrossings intersects every sphere surface with every line, ray, and
// segment. Pairs which never touch are left out.
func FindCrossings[T num.Real](s *Shapes[T]) []Crossing {
	out := []Crossing{}
	for _, sph := range s.Spheres {
		c := sph.Shape
		for _, l := range s.Lines {
			if hits := c.SurfaceIntersectionsLine(l.Shape); !hits.Empty() {
				out = append(out, newCrossing(sph.Name, "Line", l.Name,
					c.ApproxTangentLine(l.Shape), hits))
			}
		}
		for _, r := range s.Rays {
			if hits := c.SurfaceIntersectionsRay(r.Shape); !hits.Empty() {
				out = append(out, newCrossing(sph.Name, "Ray", r.Name,
					c.ApproxTangentRay(r.Shape), hits))
			}
		}
		for _, seg := range s.Segments {
			if hits := c.SurfaceIntersectionsSegment(seg.Shape); !hits.Empty() {
				out = append(out, newCrossing(sph.Name, "Segment", seg.Name,
					c.ApproxTangentSegment(seg.Shape), hits))
			}
		}
	}
	return out
}

// WriteCrossings writes cs as a text table. Rows with a single point leave
// the second point's columns out.
func WriteCrossings(wr io.Writer, cs []Crossing) error {
	_, err := fmt.Fprintln(wr, "# Sphere Kind Name Tangent Count X0 Y0 Z0 X1 Y1 Z1")
	if err != nil {
		return err
	}

	for i := range cs {
		c := &cs[i]
		tangent := 0
		if c.Tangent {
			tangent = 1
		}

		_, err := fmt.Fprintf(wr, "%s %s %s %d %d",
			c.Sphere, c.Kind, c.Name, tangent, len(c.Points))
		if err != nil {
			return err
		}
		for _, p := range c.Points {
			if _, err := fmt.Fprintf(wr, " %.8g %.8g %.8g", p[0], p[1], p[2]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(wr); err != nil {
			return err
		}
	}
	return nil
}
