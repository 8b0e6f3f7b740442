package linmath

import (
	"github.com/SayHelloLexa/linmath/internal/kernel"
)

// AddMatrices returns the cell-wise sum a + b.
// Both matrices must have the same dimension.
func AddMatrices(a, b Matrix) (Matrix, error) {
	if err := checkMatrices("add matrices", a, b); err != nil {
		return nil, err
	}
	n := a.Dim()
	out := make([]float64, n*n)
	kernel.Add(out, matrixData(a), matrixData(b))
	return newMatrixFromCells(out, n)
}

// SubtractMatrices returns the cell-wise difference a - b.
// Both matrices must have the same dimension.
func SubtractMatrices(a, b Matrix) (Matrix, error) {
	if err := checkMatrices("subtract matrices", a, b); err != nil {
		return nil, err
	}
	n := a.Dim()
	out := make([]float64, n*n)
	kernel.Sub(out, matrixData(a), matrixData(b))
	return newMatrixFromCells(out, n)
}

// MultiplyMatrices returns the matrix product a·b, where
//
//	c[x][y] = Σi a[x][i] * b[i][y]
//
// Both matrices must have the same dimension.
func MultiplyMatrices(a, b Matrix) (Matrix, error) {
	if err := checkMatrices("multiply matrices", a, b); err != nil {
		return nil, err
	}
	n := a.Dim()
	out := make([]float64, n*n)
	kernel.MatMul(out, matrixData(a), matrixData(b), n)
	return newMatrixFromCells(out, n)
}

// MultiplyVector returns the transform of v by m, where
//
//	r[i] = Σj v[j] * m[i][j]
//
// m.Dim() must equal v.Len(). The result has the same shape as v.
func MultiplyVector(m Matrix, v Vector) (Vector, error) {
	n, l := matrixDim(m), vectorLen(v)
	if m == nil || v == nil || n != l {
		return nil, &ErrDimensionMismatch{Op: "multiply vector", Expected: matrixShape(n), Actual: vectorShape(l)}
	}
	out := make([]float64, l)
	kernel.MatVec(out, matrixData(m), vectorData(v), n)
	return NewVector(out)
}

// Transpose returns m with rows and columns swapped.
func Transpose(m Matrix) (Matrix, error) {
	if m == nil {
		return nil, &ErrUnsupportedShape{Kind: KindMatrix, Shape: matrixShape(0)}
	}
	n := m.Dim()
	out := make([]float64, n*n)
	kernel.Transpose(out, matrixData(m), n)
	return newMatrixFromCells(out, n)
}

// ZeroMatrix returns the n×n matrix of zeros for n of 3 or 4.
func ZeroMatrix(n int) (Matrix, error) {
	return filledMatrix(n, 0)
}

// UnitMatrix returns the n×n matrix whose cells are all 1, for n of 3 or 4.
// It is not the identity matrix.
func UnitMatrix(n int) (Matrix, error) {
	return filledMatrix(n, 1)
}

// ZeroMatrix3 returns the 3×3 matrix of zeros.
func ZeroMatrix3() *Matrix3 { return &Matrix3{} }

// ZeroMatrix4 returns the 4×4 matrix of zeros.
func ZeroMatrix4() *Matrix4 { return &Matrix4{} }

// UnitMatrix3 returns the 3×3 matrix of ones.
func UnitMatrix3() *Matrix3 {
	m := &Matrix3{}
	kernel.Fill(m.cells[:], 1)
	return m
}

// UnitMatrix4 returns the 4×4 matrix of ones.
func UnitMatrix4() *Matrix4 {
	m := &Matrix4{}
	kernel.Fill(m.cells[:], 1)
	return m
}

func filledMatrix(n int, v float64) (Matrix, error) {
	switch n {
	case 3:
		m := &Matrix3{}
		kernel.Fill(m.cells[:], v)
		return m, nil
	case 4:
		m := &Matrix4{}
		kernel.Fill(m.cells[:], v)
		return m, nil
	default:
		return nil, &ErrUnsupportedShape{Kind: KindMatrix, Shape: matrixShape(n)}
	}
}

func checkMatrices(op string, a, b Matrix) error {
	na, nb := matrixDim(a), matrixDim(b)
	if a == nil || b == nil || na != nb {
		return &ErrDimensionMismatch{Op: op, Expected: matrixShape(na), Actual: matrixShape(nb)}
	}
	return nil
}

func matrixDim(m Matrix) int {
	if m == nil {
		return 0
	}
	return m.Dim()
}
