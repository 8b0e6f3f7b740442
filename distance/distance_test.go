package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayHelloLexa/linmath"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     linmath.Vector
		expected float64
	}{
		{"Vector2", linmath.NewVector2(0, 0), linmath.NewVector2(3, 4), 5},
		{"Vector3", linmath.NewVector3(1, 2, 3), linmath.NewVector3(4, 5, 6), 5.196152422706632},
		{"Identical", linmath.NewVector4(1, 2, 3, 4), linmath.NewVector4(1, 2, 3, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Euclidean(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)

			sq, err := SquaredEuclidean(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected*tt.expected, sq, 1e-9)
		})
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     linmath.Vector
		expected float64
	}{
		{"Orthogonal", linmath.NewVector2(1, 0), linmath.NewVector2(0, 1), 0},
		{"Parallel", linmath.NewVector3(1, 2, 3), linmath.NewVector3(2, 4, 6), 1},
		{"Opposite", linmath.NewVector2(1, 1), linmath.NewVector2(-1, -1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}

	t.Run("ZeroVector", func(t *testing.T) {
		_, err := Cosine(linmath.NewVector2(0, 0), linmath.NewVector2(1, 0))
		assert.ErrorIs(t, err, linmath.ErrDivisionByZero)
	})
}

func TestDimensionMismatch(t *testing.T) {
	a := linmath.NewVector2(1, 2)
	b := linmath.NewVector3(1, 2, 3)

	for _, f := range []Func{Euclidean, SquaredEuclidean, Cosine} {
		_, err := f(a, b)
		var dm *linmath.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	}
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Euclidean", MetricEuclidean.String())
		assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricEuclidean)
		require.NoError(t, err)
		d, err := f(linmath.NewVector2(0, 0), linmath.NewVector2(3, 4))
		require.NoError(t, err)
		assert.InDelta(t, 5.0, d, 1e-9)

		f, err = Provider(MetricSquaredEuclidean)
		require.NoError(t, err)
		assert.NotNil(t, f)

		f, err = Provider(MetricCosine)
		require.NoError(t, err)
		assert.NotNil(t, f)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}
