package geom

import (
	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// Intersections3 holds up to two distinct intersection points. The zero
// value is empty.
type Intersections3[T num.Real] struct {
	points [2]vec.Vec3[T]
	size   int
}

// Insert adds p unless an approximately equal point is already present or
// the container is full.
func (in *Intersections3[T]) Insert(p vec.Vec3[T]) {
	if in.size == len(in.points) || in.Contains(p) {
		return
	}
	in.points[in.size] = p
	in.size++
}

func (in Intersections3[T]) Size() int     { return in.size }
func (in Intersections3[T]) Capacity() int { return len(in.points) }
func (in Intersections3[T]) Empty() bool   { return in.size == 0 }

// At returns the i-th point in insertion order.
func (in Intersections3[T]) At(i int) vec.Vec3[T] {
	if i < 0 || i >= in.size {
		panic("Intersections3 index out of range.")
	}
	return in.points[i]
}

// Points returns a copy of the stored points.
func (in Intersections3[T]) Points() []vec.Vec3[T] {
	out := make([]vec.Vec3[T], in.size)
	copy(out, in.points[:in.size])
	return out
}

// Contains returns true if a stored point approximately equals p.
func (in Intersections3[T]) Contains(p vec.Vec3[T]) bool {
	for i := 0; i < in.size; i++ {
		if in.points[i].ApproxEqual(p) {
			return true
		}
	}
	return false
}

// ApproxEqual returns true if both containers hold the same points in any
// order.
func (in Intersections3[T]) ApproxEqual(o Intersections3[T]) bool {
	if in.size != o.size {
		return false
	}
	for i := 0; i < in.size; i++ {
		if !o.Contains(in.points[i]) {
			return false
		}
	}
	return true
}

func (in Intersections3[T]) Equal(o Intersections3[T]) bool {
	if in.size != o.size {
		return false
	}
	for i := 0; i < in.size; i++ {
		found := false
		for j := 0; j < o.size; j++ {
			if in.points[i] == o.points[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
