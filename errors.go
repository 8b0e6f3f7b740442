package linmath

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDivisionByZero is returned when a vector is divided by zero, including
	// normalization of a zero-length vector.
	ErrDivisionByZero = errors.New("division by zero")
)

// Kind names the family of a value: vector or matrix.
type Kind int

const (
	KindVector Kind = iota
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Shape is the extent of an operand. Vectors are reported as N×1.
type Shape struct {
	Rows int
	Cols int
}

func vectorShape(n int) Shape { return Shape{Rows: n, Cols: 1} }

func matrixShape(n int) Shape { return Shape{Rows: n, Cols: n} }

func (s Shape) String() string {
	if s.Cols == 1 {
		return strconv.Itoa(s.Rows)
	}
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// ErrShapeMismatch indicates a value was constructed from, or had its contents
// replaced by, data of the wrong size.
type ErrShapeMismatch struct {
	Kind     Kind
	Expected Shape
	Actual   Shape
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("linmath: %s shape mismatch: expected %s, got %s", e.Kind, e.Expected, e.Actual)
}

// ErrDimensionMismatch indicates the operands of an operation have
// incompatible shapes.
type ErrDimensionMismatch struct {
	Op       string
	Expected Shape
	Actual   Shape
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("linmath: %s: %s (expected %s, got %s)", e.Op, e.reason(), e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) reason() string {
	switch {
	case e.Expected.Cols == 1 && e.Actual.Cols == 1:
		return "vectors of different spaces"
	case e.Expected.Cols == 1 || e.Actual.Cols == 1:
		return "matrix and vector of different dimensions"
	default:
		return "matrices of different dimensions"
	}
}

// ErrUnsupportedShape indicates a result could not be mapped onto one of the
// concrete shapes: Vector2, Vector3, Vector4, Matrix3 or Matrix4.
type ErrUnsupportedShape struct {
	Kind  Kind
	Shape Shape
}

func (e *ErrUnsupportedShape) Error() string {
	return fmt.Sprintf("linmath: unsupported %s shape: %s", e.Kind, e.Shape)
}

func divisionByZero(op string) error {
	return fmt.Errorf("linmath: %s: %w", op, ErrDivisionByZero)
}
