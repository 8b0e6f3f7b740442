package linmath

import (
	"math"

	"github.com/SayHelloLexa/linmath/internal/kernel"
)

// Add returns the component-wise sum a + b.
// Both vectors must have the same length.
func Add(a, b Vector) (Vector, error) {
	if err := checkVectors("add", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, a.Len())
	kernel.Add(out, vectorData(a), vectorData(b))
	return NewVector(out)
}

// Subtract returns the component-wise difference a - b.
// Both vectors must have the same length.
func Subtract(a, b Vector) (Vector, error) {
	if err := checkVectors("subtract", a, b); err != nil {
		return nil, err
	}
	out := make([]float64, a.Len())
	kernel.Sub(out, vectorData(a), vectorData(b))
	return NewVector(out)
}

// Scale returns a with every component multiplied by k. Any k is accepted,
// including zero.
func Scale(a Vector, k float64) (Vector, error) {
	if a == nil {
		return nil, nilVector()
	}
	out := make([]float64, a.Len())
	kernel.Scale(out, vectorData(a), k)
	return NewVector(out)
}

// Divide returns a with every component divided by k.
// It returns ErrDivisionByZero when k is zero.
func Divide(a Vector, k float64) (Vector, error) {
	if a == nil {
		return nil, nilVector()
	}
	if k == 0 {
		return nil, divisionByZero("divide")
	}
	out := make([]float64, a.Len())
	kernel.Div(out, vectorData(a), k)
	return NewVector(out)
}

// Length returns the Euclidean norm of a. It is 0 for the zero vector and for
// a nil vector.
func Length(a Vector) float64 {
	if a == nil {
		return 0
	}
	return math.Sqrt(kernel.SquaredNorm(vectorData(a)))
}

// Normalize returns a divided by its length.
// It returns ErrDivisionByZero when a has zero length.
func Normalize(a Vector) (Vector, error) {
	if a == nil {
		return nil, nilVector()
	}
	l := Length(a)
	if l == 0 {
		return nil, divisionByZero("normalize")
	}
	out := make([]float64, a.Len())
	kernel.Div(out, vectorData(a), l)
	return NewVector(out)
}

// Dot returns the scalar product of a and b.
// Both vectors must have the same length.
func Dot(a, b Vector) (float64, error) {
	if err := checkVectors("dot", a, b); err != nil {
		return 0, err
	}
	return kernel.Dot(vectorData(a), vectorData(b)), nil
}

// Cross returns the vector product a × b.
func Cross(a, b *Vector3) *Vector3 {
	return &Vector3{c: [3]float64{
		a.c[1]*b.c[2] - a.c[2]*b.c[1],
		a.c[2]*b.c[0] - a.c[0]*b.c[2],
		a.c[0]*b.c[1] - a.c[1]*b.c[0],
	}}
}

func checkVectors(op string, a, b Vector) error {
	la, lb := vectorLen(a), vectorLen(b)
	if a == nil || b == nil || la != lb {
		return &ErrDimensionMismatch{Op: op, Expected: vectorShape(la), Actual: vectorShape(lb)}
	}
	return nil
}

func vectorLen(v Vector) int {
	if v == nil {
		return 0
	}
	return v.Len()
}

func nilVector() error {
	return &ErrUnsupportedShape{Kind: KindVector, Shape: vectorShape(0)}
}
