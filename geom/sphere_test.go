package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitSphere = Sphere[float64]{v3(0, 0, 0), 1}

func points(ps ...V) Intersections3[float64] {
	var out Intersections3[float64]
	for _, p := range ps {
		out.Insert(p)
	}
	return out
}

func TestSphereLineSurfaceIntersections(t *testing.T) {
	s := Sphere[float64]{v3(1, -2, 3), 1.5}
	hits := s.SurfaceIntersectionsLine(LineAxisXOffset(-2.0, 3.0))

	require.Equal(t, 2, hits.Size())
	assert.True(t, hits.ApproxEqual(points(v3(-0.5, -2, 3), v3(2.5, -2, 3))))
	assertVecNear(t, v3(-0.5, -2, 3), hits.At(0))
	assertVecNear(t, v3(2.5, -2, 3), hits.At(1))
}

func TestSphereSurfaceIntersections(t *testing.T) {
	table := []struct {
		name string
		hits Intersections3[float64]
		exp  Intersections3[float64]
	}{
		{"tangent line", unitSphere.SurfaceIntersectionsLine(LineAxisXOffset(1.0, 0.0)),
			points(v3(0, 1, 0))},
		{"missing line", unitSphere.SurfaceIntersectionsLine(LineAxisXOffset(2.0, 0.0)),
			points()},
		{"ray from center", unitSphere.SurfaceIntersectionsRay(RayAxisX[float64]()),
			points(v3(1, 0, 0))},
		{"ray pointing away", unitSphere.SurfaceIntersectionsRay(
			Ray3[float64]{v3(3, 0, 0), v3(1, 0, 0)}), points()},
		{"crossing segment", unitSphere.SurfaceIntersectionsSegment(
			Segment3[float64]{v3(-2, 0, 0), v3(2, 0, 0)}), points(v3(-1, 0, 0), v3(1, 0, 0))},
		{"half segment", unitSphere.SurfaceIntersectionsSegment(
			Segment3[float64]{v3(0, 0, 0), v3(2, 0, 0)}), points(v3(1, 0, 0))},
		{"inner segment", unitSphere.SurfaceIntersectionsSegment(
			Segment3[float64]{v3(-0.5, 0, 0), v3(0.5, 0, 0)}), points()},
		{"point sphere", Sphere[float64]{v3(0, 0, 0), 0}.SurfaceIntersectionsLine(
			LineAxisX[float64]()), points(v3(0, 0, 0))},
	}

	for i, line := range table {
		if !line.hits.ApproxEqual(line.exp) {
			t.Errorf("%d) %s: got %v, expected %v",
				i+1, line.name, line.hits.Points(), line.exp.Points())
		}
	}
}

func TestSphereTangent(t *testing.T) {
	assert.True(t, unitSphere.ApproxTangentLine(LineAxisXOffset(1.0, 0.0)))
	assert.False(t, unitSphere.ApproxTangentLine(LineAxisX[float64]()))
	assert.True(t, unitSphere.ApproxTangentRay(Ray3[float64]{v3(-5, 1, 0), v3(1, 0, 0)}))
	assert.False(t, unitSphere.ApproxTangentRay(Ray3[float64]{v3(5, 1, 0), v3(1, 0, 0)}))
	assert.True(t, unitSphere.ApproxTangentSegment(Segment3[float64]{v3(-1, 0, 1), v3(1, 0, 1)}))
	assert.False(t, unitSphere.ApproxTangentSegment(Segment3[float64]{v3(1, 0, 1), v3(2, 0, 1)}))
}

func TestSphereNearTangent(t *testing.T) {
	table := []struct {
		r, offset float64
		tangent   bool
		hits      int
	}{
		{1, 1.000005, true, 1},
		{1, 0.999995, true, 1},
		{1, 1.001, false, 0},
		{1, 0.999, false, 2},
		{1000, 1000.005, true, 1},
		{1000, 999.995, true, 1},
		{1000, 1001, false, 0},
		{0.001, 0.001000001, true, 1},
	}

	for i, line := range table {
		s := Sphere[float64]{v3(0, 0, 0), line.r}
		l := LineAxisXOffset(line.offset, 0.0)
		hits := s.SurfaceIntersectionsLine(l)

		if s.ApproxIntersectsLine(l) != !hits.Empty() {
			t.Errorf("%d) ApproxIntersectsLine = %v with %d surface points",
				i+1, s.ApproxIntersectsLine(l), hits.Size())
		}
		if s.ApproxTangentLine(l) != line.tangent {
			t.Errorf("%d) ApproxTangentLine = %v, expected %v",
				i+1, s.ApproxTangentLine(l), line.tangent)
		}
		if hits.Size() != line.hits {
			t.Errorf("%d) %d surface points, expected %d", i+1, hits.Size(), line.hits)
		}
	}
}

func TestSphereMeasures(t *testing.T) {
	assert.InDelta(t, 4*math.Pi/3, unitSphere.Volume(), 1e-9)
	assert.InDelta(t, 4*math.Pi, unitSphere.SurfaceArea(), 1e-9)

	assert.True(t, unitSphere.ApproxContains(v3(0.5, 0.5, 0.5)))
	assert.True(t, unitSphere.ApproxContains(v3(1, 0, 0)))
	assert.False(t, unitSphere.ApproxContains(v3(1, 1, 0)))

	point := Sphere[float64]{v3(0, 0, 0), 0}
	assert.True(t, point.ApproxContains(v3(0, 0, 0)))
	assert.False(t, point.ApproxContains(v3(0.01, 0, 0)))

	assert.InDelta(t, 2.0, unitSphere.SignedDistance(v3(3, 0, 0)), 1e-9)
	assert.InDelta(t, -0.5, unitSphere.SignedDistance(v3(0.5, 0, 0)), 1e-9)
	assert.Equal(t, 0.0, unitSphere.Distance(v3(0.5, 0, 0)))

	assert.InDelta(t, 2.0, unitSphere.DistanceLine(LineAxisXOffset(3.0, 0.0)), 1e-9)
	assert.Equal(t, 0.0, unitSphere.DistanceLine(LineAxisX[float64]()))
	assert.InDelta(t, 2.0, unitSphere.DistanceRay(Ray3[float64]{v3(3, 0, 0), v3(1, 0, 0)}), 1e-9)
	assert.InDelta(t, 2.0, unitSphere.DistanceSegment(Segment3[float64]{v3(0, 5, 0), v3(0, 3, 0)}), 1e-9)
	assert.InDelta(t, 3.0, unitSphere.DistancePlane(PlaneXYOffset(4.0)), 1e-9)
	assert.InDelta(t, 3.0, unitSphere.DistanceSphere(Sphere[float64]{v3(5, 0, 0), 1}), 1e-9)
}

func TestSphereIntersects(t *testing.T) {
	assert.True(t, unitSphere.ApproxIntersectsPlane(PlaneXYOffset(1.0)))
	assert.False(t, unitSphere.ApproxIntersectsPlane(PlaneXYOffset(1.5)))
	assert.True(t, unitSphere.ApproxIntersectsSphere(Sphere[float64]{v3(2, 0, 0), 1}))
	assert.False(t, unitSphere.ApproxIntersectsSphere(Sphere[float64]{v3(2.5, 0, 0), 1}))
	assert.True(t, unitSphere.ApproxIntersectsTriangle(right))
	assert.False(t, unitSphere.ApproxIntersectsTriangle(right.Translate(v3(0, 0, 2))))
	assert.True(t, unitSphere.ApproxIntersectsSegment(Segment3[float64]{v3(-0.5, 0, 0), v3(0.5, 0, 0)}))
	assert.False(t, unitSphere.ApproxIntersectsRay(Ray3[float64]{v3(2, 0, 0), v3(1, 0, 0)}))
	assert.True(t, unitSphere.ApproxIntersectsLine(LineAxisYOffset(0.5, 0.5)))
}

func TestSphereIntersectDepth(t *testing.T) {
	table := []struct {
		o     Sphere[float64]
		ok    bool
		depth V
	}{
		{Sphere[float64]{v3(1.5, 0, 0), 1}, true, v3(-0.5, 0, 0)},
		{Sphere[float64]{v3(0, 0, 0), 1}, true, v3(2, 0, 0)},
		{Sphere[float64]{v3(0, -1, 0), 0.5}, true, v3(0, 0.5, 0)},
		{Sphere[float64]{v3(2, 0, 0), 1}, false, V{}},
		{Sphere[float64]{v3(3, 0, 0), 1}, false, V{}},
	}

	for i, line := range table {
		depth, ok := unitSphere.IntersectDepth(line.o)
		if ok != line.ok || (ok && !depth.ApproxEqual(line.depth)) {
			t.Errorf("%d) IntersectDepth(%v) = %v, %v, not %v, %v",
				i+1, line.o, depth, ok, line.depth, line.ok)
		}
	}
}

func TestSphereTransforms(t *testing.T) {
	s := Sphere[float64]{v3(1, 0, 0), 1}

	assert.Equal(t, Sphere[float64]{v3(2, 0, 0), 2}, s.Scale(2))
	assert.Equal(t, Sphere[float64]{v3(1, 0, 0), 3}, s.ScaleAt(v3(1, 0, 0), -3))
	assert.Equal(t, Sphere[float64]{v3(2, 1, 1), 1}, s.Translate(v3(1, 1, 1)))

	rot := s.RotateAxisAngle(v3(0, 0, 1), math.Pi/2)
	assert.True(t, rot.ApproxEqual(Sphere[float64]{v3(0, 1, 0), 1}))

	// Rotating a sphere and a point together preserves their distance.
	p := v3(3, 2, -1)
	axis := v3(1, 2, 3).Normalize()
	assert.InDelta(t,
		s.Distance(p),
		s.RotateAxisAngleAt(v3(1, 1, 1), axis, 1.1).Distance(p.RotateAxisAngleAt(v3(1, 1, 1), axis, 1.1)),
		1e-9,
	)

	assert.True(t, s.Less(s.Scale(2)))
	assert.True(t, s.Less(Sphere[float64]{v3(1, 0, 0), 2}))
	assert.False(t, s.Less(s))
}

func BenchmarkSphereSurfaceIntersections(b *testing.B) {
	s := Sphere[float64]{v3(1, -2, 3), 1.5}
	l := LineAxisXOffset(-2.0, 3.0)
	for i := 0; i < b.N; i++ {
		s.SurfaceIntersectionsLine(l)
	}
}
