package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	rng := NewRNG(4711)

	for _, n := range []int{2, 3, 4} {
		vs := rng.Vectors(8, n)

		require.Len(t, vs, 8)
		for _, v := range vs {
			assert.Equal(t, n, v.Len())
			for _, c := range v.Components() {
				assert.GreaterOrEqual(t, c, DefaultMin)
				assert.Less(t, c, DefaultMax)
			}
		}
	}
}

func TestVectorPanicsOnUnsupportedShape(t *testing.T) {
	rng := NewRNG(4711)

	assert.Panics(t, func() { rng.Vector(5) })
	assert.Panics(t, func() { rng.Matrix(2) })
}

func TestMatrix(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.Matrix(4)

	assert.Equal(t, 4, m.Dim())
	for _, row := range m.Rows() {
		assert.Len(t, row, 4)
	}
}

func TestNonZeroScalar(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		k := rng.NonZeroScalar()
		assert.False(t, k > -1e-3 && k < 1e-3)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Vector(4)
	m1 := rng.Matrix(3)

	rng.Reset()
	v2 := rng.Vector(4)
	m2 := rng.Matrix(3)

	assert.True(t, v1.Equal(v2))
	assert.True(t, m1.Equal(m2))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)
	dst := make([]float64, 64)

	rng.FillUniformRange(dst, -1, 1)

	for _, v := range dst {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}
