package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxEqual(t *testing.T) {
	table := []struct {
		a, b float64
		eq   bool
	}{
		{0, 0, true},
		{1, 1 + 1e-6, true},
		{1, 1.001, false},
		{0, 1e-6, true},
		{0, 1e-3, false},
		{1e6, 1e6 + 1, true},  // relative tolerance
		{1e6, 1e6 + 100, false},
		{-2, 2, false},
	}

	for i, line := range table {
		assert.Equal(t, line.eq, ApproxEqual(line.a, line.b), "%d) %g vs %g", i+1, line.a, line.b)
		assert.Equal(t, line.eq, ApproxEqual(line.b, line.a), "%d) %g vs %g", i+1, line.b, line.a)
	}
}

func TestApproxOrdering(t *testing.T) {
	assert.True(t, ApproxLess(1.0, 2.0))
	assert.False(t, ApproxLess(1.0, 1.0+1e-7))
	assert.True(t, ApproxLessOrEqual(1.0, 1.0+1e-7))
	assert.True(t, ApproxLessOrEqual(1.0+1e-7, 1.0))
	assert.True(t, ApproxGreater(2.0, 1.0))
	assert.True(t, ApproxGreaterOrEqual(1.0, 1.0+1e-7))
	assert.False(t, ApproxGreaterOrEqual(1.0, 2.0))

	assert.True(t, ApproxLessZero(-1.0))
	assert.False(t, ApproxLessZero(-1e-7))
	assert.True(t, ApproxGreaterZero(float32(0.5)))
	assert.False(t, ApproxGreaterZero(float32(1e-7)))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 3.0, Abs(-3.0))
	assert.Equal(t, float32(2), Min(float32(2), 3))
	assert.Equal(t, 3.0, Max(2.0, 3.0))
	assert.Equal(t, 1.0, Clamp(5.0, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5.0, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
	assert.Equal(t, 9.0, Sqrd(-3.0))
	assert.Equal(t, 3.0, Sqrt(9.0))
	assert.Equal(t, 2.5, Lerp(2.0, 3.0, 0.5))
	assert.InDelta(t, math.Pi, float64(Pi[float32]()), 1e-6)
	assert.Equal(t, 0.0, Acos(1.0+1e-12))
	assert.True(t, math.IsInf(float64(Inf[float32](-1)), -1))
}
