package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersections3(t *testing.T) {
	var in Intersections3[float64]
	assert.True(t, in.Empty())
	assert.Equal(t, 2, in.Capacity())

	in.Insert(v3(1, 2, 3))
	in.Insert(v3(1, 2, 3+1e-7))
	assert.Equal(t, 1, in.Size())

	in.Insert(v3(4, 5, 6))
	in.Insert(v3(7, 8, 9))
	assert.Equal(t, 2, in.Size())
	assert.False(t, in.Contains(v3(7, 8, 9)))
	assert.True(t, in.Contains(v3(4, 5, 6)))

	assert.Equal(t, v3(1, 2, 3), in.At(0))
	assert.Equal(t, v3(4, 5, 6), in.At(1))
	assert.Panics(t, func() { in.At(2) })
	assert.Panics(t, func() { in.At(-1) })

	pts := in.Points()
	pts[0] = v3(0, 0, 0)
	assert.Equal(t, v3(1, 2, 3), in.At(0))
}

func TestIntersections3Equality(t *testing.T) {
	a := points(v3(1, 0, 0), v3(-1, 0, 0))
	b := points(v3(-1, 0, 0), v3(1, 0, 0))
	c := points(v3(-1, 0, 0), v3(1+1e-7, 0, 0))
	d := points(v3(1, 0, 0))

	assert.True(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.ApproxEqual(c))
	assert.False(t, a.ApproxEqual(d))
	assert.False(t, a.Equal(d))
	assert.True(t, points().Equal(Intersections3[float64]{}))
}
