// Package kernel provides the scalar loops behind the linmath dispatcher.
//
// All functions operate on flat []float64 buffers. Matrices are stored row-major,
// so cell (r, c) of an n×n matrix lives at index n*r + c.
//
// # Safety
//
// Kernels do not check lengths. Callers validate operand shapes first and pass a
// dst of the right size; mismatched buffers panic with an index out of range.
//
// # Operations
//
//   - Element-wise: Add, Sub, Scale, Div, Fill
//   - Reductions: Dot, SquaredNorm
//   - Matrix: MatMul, MatVec, Transpose
package kernel
