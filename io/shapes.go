package io

import (
	"github.com/phil-mansfield/nnmath/geom"
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Named attaches the section name from a query file to a shape.
type Named[S any] struct {
	Name  string
	Shape S
}

// Shapes holds every shape in a query file, converted to precision T. Each
// slice is sorted by name.
type Shapes[T num.Real] struct {
	Spheres   []Named[geom.Sphere[T]]
	Planes    []Named[geom.Plane[T]]
	Lines     []Named[geom.Line3[T]]
	Rays      []Named[geom.Ray3[T]]
	Segments  []Named[geom.Segment3[T]]
	Triangles []Named[geom.Triangle3[T]]
}

func point[T num.Real](x, y, z float64) vec.Vec3[T] {
	return vec.New(T(x), T(y), T(z))
}

// BuildShapes converts the sections of a validated QueryWrapper into geom
// primitives. Directions and normals are normalized.
func BuildShapes[T num.Real](wrap *QueryWrapper) *Shapes[T] {
	s := &Shapes[T]{}

	for _, name := range sortedNames(wrap.Sphere) {
		c := wrap.Sphere[name]
		sph := geom.Sphere[T]{Center: point[T](c.X, c.Y, c.Z), Radius: T(c.Radius)}
		s.Spheres = append(s.Spheres, Named[geom.Sphere[T]]{name, sph})
	}

	for _, name := range sortedNames(wrap.Plane) {
		c := wrap.Plane[name]
		pl := geom.Plane[T]{
			Origin: point[T](c.X, c.Y, c.Z),
			Normal: point[T](c.NX, c.NY, c.NZ).Normalize(),
		}
		s.Planes = append(s.Planes, Named[geom.Plane[T]]{name, pl})
	}

	for _, name := range sortedNames(wrap.Line) {
		c := wrap.Line[name]
		l := geom.Line3[T]{
			Point:     point[T](c.X, c.Y, c.Z),
			Direction: point[T](c.DX, c.DY, c.DZ).Normalize(),
		}
		s.Lines = append(s.Lines, Named[geom.Line3[T]]{name, l})
	}

	for _, name := range sortedNames(wrap.Ray) {
		c := wrap.Ray[name]
		r := geom.Ray3[T]{
			Origin:    point[T](c.X, c.Y, c.Z),
			Direction: point[T](c.DX, c.DY, c.DZ).Normalize(),
		}
		s.Rays = append(s.Rays, Named[geom.Ray3[T]]{name, r})
	}

	for _, name := range sortedNames(wrap.Segment) {
		c := wrap.Segment[name]
		seg := geom.Segment3[T]{
			Start: point[T](c.X0, c.Y0, c.Z0),
			End:   point[T](c.X1, c.Y1, c.Z1),
		}
		s.Segments = append(s.Segments, Named[geom.Segment3[T]]{name, seg})
	}

	for _, name := range sortedNames(wrap.Triangle) {
		c := wrap.Triangle[name]
		tri := geom.NewTriangle3(
			point[T](c.X0, c.Y0, c.Z0),
			point[T](c.X1, c.Y1, c.Z1),
			point[T](c.X2, c.Y2, c.Z2),
		)
		s.Triangles = append(s.Triangles, Named[geom.Triangle3[T]]{name, tri})
	}

	return s
}
