package io

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/nnmath/vec"
)

func exampleShapes(t *testing.T) *Shapes[float64] {
	t.Helper()
	wrap, err := ParseQueryConfig(exampleConfig())
	require.NoError(t, err)
	return BuildShapes[float64](wrap)
}

func TestBuildShapes(t *testing.T) {
	s := exampleShapes(t)
	assert.Equal(t, 6, s.Len())

	require.Len(t, s.Spheres, 1)
	assert.Equal(t, "ball", s.Spheres[0].Name)
	assert.Equal(t, vec.New(1.0, -2.0, 3.0), s.Spheres[0].Shape.Center)

	require.Len(t, s.Lines, 1)
	assert.Equal(t, vec.New(1.0, 0.0, 0.0), s.Lines[0].Shape.Direction)

	// The surface of ball crosses x_axis at x = -0.5 and x = 2.5.
	hits := s.Spheres[0].Shape.SurfaceIntersectionsLine(s.Lines[0].Shape)
	assert.Equal(t, 2, hits.Size())
}

func TestEvaluate(t *testing.T) {
	s := exampleShapes(t)
	pts := []vec.Vec3[float64]{vec.New(0.0, 0.0, 0.0), vec.New(1.0, -2.0, 3.0)}

	rs := Evaluate(s, pts)
	require.Len(t, rs, 12)

	table := []struct {
		kind, name string
		contains   bool
		dist       float64
	}{
		{"Sphere", "ball", false, math.Sqrt(14) - 1.5},
		{"Plane", "floor", true, 0},
		{"Line", "x_axis", false, math.Sqrt(13)},
		{"Ray", "beam", true, 0},
		{"Segment", "edge", true, 0},
		{"Triangle", "face", true, 0},
	}

	for i, line := range table {
		r := rs[i]
		if r.Kind != line.kind || r.Name != line.name || r.Shape != i {
			t.Errorf("%d) result is for %s '%s' (%d), not %s '%s'",
				i+1, r.Kind, r.Name, r.Shape, line.kind, line.name)
		}
		if r.Contains != line.contains {
			t.Errorf("%d) Contains = %v, not %v", i+1, r.Contains, line.contains)
		}
		if math.Abs(r.Distance-line.dist) > 1e-9 {
			t.Errorf("%d) Distance = %g, not %g", i+1, r.Distance, line.dist)
		}
	}

	// The second point is the center of the sphere.
	assert.True(t, rs[6].Contains)
	assert.Equal(t, [3]float64{1, -2, 3}, rs[6].Closest)
	assert.Equal(t, 0, rs[6].Shape)
	assert.Equal(t, [3]float64{1, -2, 0}, rs[7].Closest)
}

func TestWriteResults(t *testing.T) {
	s := exampleShapes(t)
	rs := Evaluate(s, []vec.Vec3[float64]{vec.New(0.0, 0.0, 0.0)})

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResults(buf, rs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.True(t, strings.HasPrefix(lines[1], "0 0 0 Sphere ball 0 "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "0 0 0 Plane floor 1 0 "), lines[2])
}

func TestWriteResultsBinary(t *testing.T) {
	s := exampleShapes(t)
	rs := Evaluate(s, []vec.Vec3[float64]{vec.New(0.0, 0.0, 0.0), vec.New(5.0, 5.0, 5.0)})

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResultsBinary(buf, rs))

	hd, recs, err := ReadResultsBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), hd.Endianness)
	assert.Equal(t, int64(len(rs)), hd.Count)
	require.Len(t, recs, len(rs))

	for i := range rs {
		assert.Equal(t, rs[i].Point, recs[i].Point, "%d)", i)
		assert.Equal(t, int64(rs[i].Shape), recs[i].Shape, "%d)", i)
		assert.Equal(t, rs[i].Distance, recs[i].Distance, "%d)", i)
		assert.Equal(t, rs[i].Contains, recs[i].Contains == 1, "%d)", i)
	}

	_, _, err = ReadResultsBinary(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
