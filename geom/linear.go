package geom

import (
	"math"

	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// interval is the parameter range of a linear primitive: (-inf, inf) for
// lines, [0, inf) for rays and [0, 1] for segments.
type interval[T num.Real] struct {
	lo, hi T
}

func lineInterval[T num.Real]() interval[T] {
	return interval[T]{num.Inf[T](-1), num.Inf[T](+1)}
}
func rayInterval[T num.Real]() interval[T]     { return interval[T]{0, num.Inf[T](+1)} }
func segmentInterval[T num.Real]() interval[T] { return interval[T]{0, 1} }

func (in interval[T]) clamp(t T) T { return num.Clamp(t, in.lo, in.hi) }

// bounds returns the finite ends of the interval.
func (in interval[T]) bounds() []T {
	out := make([]T, 0, 2)
	if !isInf(in.lo) {
		out = append(out, in.lo)
	}
	if !isInf(in.hi) {
		out = append(out, in.hi)
	}
	return out
}

func isInf[T num.Real](x T) bool { return math.IsInf(float64(x), 0) }

// linear is the parametric form p + d*t, t in dom, shared by Line3, Ray3
// and Segment3. Segments use their unnormalized direction so that dom is
// always [0, 1].
type linear[T num.Real] struct {
	p, d vec.Vec3[T]
	dom  interval[T]
}

func (l linear[T]) at(t T) vec.Vec3[T] { return l.p.Add(l.d.Scale(t)) }

// closestParam returns the parameter of the point in l closest to pt.
func (l linear[T]) closestParam(pt vec.Vec3[T]) T {
	dd := l.d.Dot(l.d)
	if dd == 0 {
		return 0
	}
	return l.dom.clamp(pt.Sub(l.p).Dot(l.d) / dd)
}

func (l linear[T]) closestPoint(pt vec.Vec3[T]) vec.Vec3[T] {
	return l.at(l.closestParam(pt))
}

func (l linear[T]) distance(pt vec.Vec3[T]) T {
	return l.closestPoint(pt).Distance(pt)
}

func (l linear[T]) approxContains(pt vec.Vec3[T]) bool {
	return l.closestPoint(pt).ApproxEqual(pt)
}

// unbounded returns the infinite line through l.
func (l linear[T]) unbounded() linear[T] {
	return linear[T]{l.p, l.d, lineInterval[T]()}
}

func approxParallelDirs[T num.Real](d1, d2 vec.Vec3[T]) bool {
	return d1.Normalize().Cross(d2.Normalize()).ApproxZero()
}

func approxPerpendicularDirs[T num.Real](d1, d2 vec.Vec3[T]) bool {
	return num.ApproxZero(d1.Normalize().Dot(d2.Normalize()))
}

// approxParallel is true if a and b run along the same direction. A
// degenerate primitive is parallel to everything.
func (a linear[T]) approxParallel(b linear[T]) bool {
	return approxParallelDirs(a.d, b.d)
}

func (a linear[T]) approxPerpendicular(b linear[T]) bool {
	return approxPerpendicularDirs(a.d, b.d)
}

// approxCollinear is true if a and b lie on a common infinite line.
func (a linear[T]) approxCollinear(b linear[T]) bool {
	return a.approxParallel(b) && a.unbounded().approxContains(b.p) &&
		b.unbounded().approxContains(a.p)
}

// approxCoplanar is true if a and b lie in a common plane: they are
// parallel, or the scalar triple product of their directions and the offset
// between them vanishes.
func (a linear[T]) approxCoplanar(b linear[T]) bool {
	if a.approxParallel(b) {
		return true
	}
	n := a.d.Normalize().Cross(b.d.Normalize()).Normalize()
	return num.ApproxZero(b.p.Sub(a.p).Dot(n))
}

// closestParams solves for the parameters of the closest approach of the
// infinite lines through a and b with Cramer's rule. ok is false if the
// lines are parallel.
func (a linear[T]) closestParams(b linear[T]) (s, t T, ok bool) {
	if a.approxParallel(b) {
		return 0, 0, false
	}

	w := b.p.Sub(a.p)
	cross := a.d.Cross(b.d)
	denom := cross.LengthSqrd()

	s = w.Cross(b.d).Dot(cross) / denom
	t = w.Cross(a.d).Dot(cross) / denom
	return s, t, true
}

// distance returns the minimum distance between a and b.
//
// If the closest approach of the underlying lines lies inside both parameter
// ranges, it is the answer. Otherwise the minimum is on the boundary of the
// parameter domain, which is an origin or an endpoint of one of the two
// primitives.
func (a linear[T]) distanceTo(b linear[T]) T {
	if s, t, ok := a.closestParams(b); ok {
		if a.dom.clamp(s) == s && b.dom.clamp(t) == t {
			return a.at(s).Distance(b.at(t))
		}
	}

	dist, found := num.Inf[T](+1), false
	for _, s := range a.dom.bounds() {
		dist, found = num.Min(dist, b.distance(a.at(s))), true
	}
	for _, t := range b.dom.bounds() {
		dist, found = num.Min(dist, a.distance(b.at(t))), true
	}

	if !found {
		// Two parallel lines.
		return a.distance(b.p)
	}
	return dist
}

// intersection returns the single point shared by a and b. ok is false if
// there is no such point. overlap is true if a and b share infinitely many
// points, in which case ok is false.
func (a linear[T]) intersection(b linear[T]) (pt vec.Vec3[T], ok, overlap bool) {
	if a.d.ApproxZero() {
		if b.approxContains(a.p) {
			return a.p, true, false
		}
		return vec.Vec3[T]{}, false, false
	} else if b.d.ApproxZero() {
		if a.approxContains(b.p) {
			return b.p, true, false
		}
		return vec.Vec3[T]{}, false, false
	}

	s, t, nonParallel := a.closestParams(b)
	if !nonParallel {
		return a.collinearIntersection(b)
	}

	pa, pb := a.at(s), b.at(t)
	if !pa.ApproxEqual(pb) {
		// Skew lines.
		return vec.Vec3[T]{}, false, false
	}
	if !a.approxContains(pa) || !b.approxContains(pb) {
		return vec.Vec3[T]{}, false, false
	}
	return pa, true, false
}

// collinearOverlap maps b's parameter range onto a's and returns the part of
// a's range the two share. ok is false if a and b are not collinear or if
// their ranges are disjoint. A shared range which collapses to a point has
// lo == hi.
func (a linear[T]) collinearOverlap(b linear[T]) (lo, hi T, ok bool) {
	if !a.unbounded().approxContains(b.p) {
		return 0, 0, false
	}

	dd := a.d.Dot(a.d)
	s0 := b.p.Sub(a.p).Dot(a.d) / dd
	k := b.d.Dot(a.d) / dd

	lo, hi = s0+k*b.dom.lo, s0+k*b.dom.hi
	if k < 0 {
		lo, hi = hi, lo
	}
	lo, hi = num.Max(lo, a.dom.lo), num.Min(hi, a.dom.hi)

	if isInf(lo) || isInf(hi) {
		return lo, hi, lo < hi
	}

	if a.at(lo).ApproxEqual(a.at(hi)) {
		mid := (lo + hi) / 2
		return mid, mid, true
	}
	return lo, hi, lo < hi
}

// collinearIntersection handles parallel a and b.
func (a linear[T]) collinearIntersection(b linear[T]) (pt vec.Vec3[T], ok, overlap bool) {
	lo, hi, shared := a.collinearOverlap(b)
	switch {
	case !shared:
		return vec.Vec3[T]{}, false, false
	case lo == hi:
		return a.at(lo), true, false
	}
	return vec.Vec3[T]{}, false, true
}

func (a linear[T]) approxIntersects(b linear[T]) bool {
	_, ok, overlap := a.intersection(b)
	return ok || overlap
}
