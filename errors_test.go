package linmath

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "VectorShapeMismatch",
			err:      &ErrShapeMismatch{Kind: KindVector, Expected: vectorShape(2), Actual: vectorShape(3)},
			expected: "linmath: vector shape mismatch: expected 2, got 3",
		},
		{
			name:     "MatrixShapeMismatch",
			err:      &ErrShapeMismatch{Kind: KindMatrix, Expected: matrixShape(3), Actual: Shape{Rows: 3, Cols: 2}},
			expected: "linmath: matrix shape mismatch: expected 3x3, got 3x2",
		},
		{
			name:     "VectorDimensionMismatch",
			err:      &ErrDimensionMismatch{Op: "add", Expected: vectorShape(2), Actual: vectorShape(3)},
			expected: "linmath: add: vectors of different spaces (expected 2, got 3)",
		},
		{
			name:     "MatrixDimensionMismatch",
			err:      &ErrDimensionMismatch{Op: "multiply matrices", Expected: matrixShape(3), Actual: matrixShape(4)},
			expected: "linmath: multiply matrices: matrices of different dimensions (expected 3x3, got 4x4)",
		},
		{
			name:     "MatrixVectorDimensionMismatch",
			err:      &ErrDimensionMismatch{Op: "multiply vector", Expected: matrixShape(4), Actual: vectorShape(3)},
			expected: "linmath: multiply vector: matrix and vector of different dimensions (expected 4x4, got 3)",
		},
		{
			name:     "UnsupportedShape",
			err:      &ErrUnsupportedShape{Kind: KindVector, Shape: vectorShape(5)},
			expected: "linmath: unsupported vector shape: 5",
		},
		{
			name:     "DivisionByZero",
			err:      divisionByZero("normalize"),
			expected: "linmath: normalize: division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	_, err := Add(NewVector2(1, 2), NewVector4(1, 2, 3, 4))
	wrapped := fmt.Errorf("render mesh: %w", err)

	var dm *ErrDimensionMismatch
	assert.True(t, errors.As(wrapped, &dm))
	assert.Equal(t, 4, dm.Actual.Rows)

	_, err = Normalize(NewVector3(0, 0, 0))
	assert.True(t, errors.Is(fmt.Errorf("render mesh: %w", err), ErrDivisionByZero))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "vector", KindVector.String())
	assert.Equal(t, "matrix", KindMatrix.String())
	assert.Equal(t, "Unknown(99)", Kind(99).String())
}
