// Package linmath provides fixed-dimension vectors and square matrices for
// geometric math.
//
// Vectors come in three shapes (Vector2, Vector3, Vector4) and matrices in two
// (Matrix3, Matrix4). All arithmetic is done by free functions that validate
// the operand shapes and return a newly constructed value of the matching
// shape; operands are never modified.
//
// # Quick Start
//
//	a := linmath.NewVector3(5, 9, 12)
//	b := linmath.NewVector3(14, 5.6, 7.7)
//
//	sum, err := linmath.Add(a, b)        // Vector3(19, 14.6, 19.7)
//	dot, err := linmath.Dot(a, b)        // 212.8
//	n := linmath.Cross(a, b)             // Vector3(2.1, 129.5, -98)
//	unit, err := linmath.Normalize(a)    // length 1
//
//	m, err := linmath.NewMatrix3([][]float64{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	    {7, 8, 9},
//	})
//	v, err := linmath.MultiplyVector(m, linmath.NewVector3(10, 5, 1)) // Vector3(23, 71, 119)
//
// # Errors
//
// Shape violations are reported as typed errors carrying the expected and
// actual sizes:
//
//   - *ErrShapeMismatch: a constructor or setter received data of the wrong size
//   - *ErrDimensionMismatch: the operands of an operation have different shapes
//   - *ErrUnsupportedShape: a result has no concrete shape (e.g. 5 components)
//   - ErrDivisionByZero: division by zero or normalization of a zero vector
//
// Use errors.As and errors.Is to inspect them.
//
// # Equality
//
// Equal on vectors and matrices compares every component with an absolute
// tolerance of Epsilon (1e-7).
//
// # Concurrency
//
// Operations are pure functions and safe for concurrent use. SetComponents and
// SetRows mutate their receiver and need external synchronization if the same
// value is shared between goroutines.
package linmath
