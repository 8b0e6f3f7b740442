package linmath

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a fixed-size square grid of float64 cells in row-major order.
//
// The concrete shapes are *Matrix3 and *Matrix4.
type Matrix interface {
	// Dim returns N for an N×N matrix.
	Dim() int
	// At returns the cell in the given row and column. It panics if either
	// index is out of range.
	At(row, col int) float64
	// Rows returns a copy of the grid, one slice per row.
	Rows() [][]float64
	// SetRows replaces all cells. It returns *ErrShapeMismatch and leaves the
	// matrix unchanged unless grid is exactly Dim()×Dim().
	SetRows(grid [][]float64) error
	// Equal reports whether other has the same dimension and every cell
	// differs by less than Epsilon.
	Equal(other Matrix) bool
}

// Matrix3 is a 3×3 matrix. Cell (r, c) is stored at index 3*r + c.
type Matrix3 struct {
	cells [9]float64
}

// NewMatrix3 returns a 3×3 matrix holding grid.
// It returns *ErrShapeMismatch unless grid has 3 rows of 3 columns.
func NewMatrix3(grid [][]float64) (*Matrix3, error) {
	m := &Matrix3{}
	if err := setRows(m.cells[:], 3, grid); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matrix3) Dim() int                       { return 3 }
func (m *Matrix3) At(row, col int) float64        { return m.cells[cellIndex(3, row, col)] }
func (m *Matrix3) Rows() [][]float64              { return splitRows(m.cells[:], 3) }
func (m *Matrix3) SetRows(grid [][]float64) error { return setRows(m.cells[:], 3, grid) }
func (m *Matrix3) Equal(other Matrix) bool        { return equalCells(m.cells[:], 3, other) }
func (m *Matrix3) String() string                 { return formatMatrix("Matrix3", m.cells[:], 3) }

// Matrix4 is a 4×4 matrix. Cell (r, c) is stored at index 4*r + c.
type Matrix4 struct {
	cells [16]float64
}

// NewMatrix4 returns a 4×4 matrix holding grid.
// It returns *ErrShapeMismatch unless grid has 4 rows of 4 columns.
func NewMatrix4(grid [][]float64) (*Matrix4, error) {
	m := &Matrix4{}
	if err := setRows(m.cells[:], 4, grid); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matrix4) Dim() int                       { return 4 }
func (m *Matrix4) At(row, col int) float64        { return m.cells[cellIndex(4, row, col)] }
func (m *Matrix4) Rows() [][]float64              { return splitRows(m.cells[:], 4) }
func (m *Matrix4) SetRows(grid [][]float64) error { return setRows(m.cells[:], 4, grid) }
func (m *Matrix4) Equal(other Matrix) bool        { return equalCells(m.cells[:], 4, other) }
func (m *Matrix4) String() string                 { return formatMatrix("Matrix4", m.cells[:], 4) }

// NewMatrix builds the concrete matrix matching the size of grid.
// It returns *ErrUnsupportedShape for anything but 3×3 and 4×4 grids.
func NewMatrix(grid [][]float64) (Matrix, error) {
	switch len(grid) {
	case 3:
		m, err := NewMatrix3(grid)
		if err != nil {
			return nil, err
		}
		return m, nil
	case 4:
		m, err := NewMatrix4(grid)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, &ErrUnsupportedShape{Kind: KindMatrix, Shape: gridShape(grid)}
	}
}

// newMatrixFromCells builds the concrete matrix for a flat row-major buffer.
// The buffer is copied.
func newMatrixFromCells(cells []float64, n int) (Matrix, error) {
	switch n {
	case 3:
		m := &Matrix3{}
		copy(m.cells[:], cells)
		return m, nil
	case 4:
		m := &Matrix4{}
		copy(m.cells[:], cells)
		return m, nil
	default:
		return nil, &ErrUnsupportedShape{Kind: KindMatrix, Shape: matrixShape(n)}
	}
}

// matrixData returns the backing storage of the built-in shapes and a
// flattened copy for any other implementation. The result must not be written
// to.
func matrixData(m Matrix) []float64 {
	switch m := m.(type) {
	case *Matrix3:
		return m.cells[:]
	case *Matrix4:
		return m.cells[:]
	default:
		n := m.Dim()
		cells := make([]float64, 0, n*n)
		for _, row := range m.Rows() {
			cells = append(cells, row...)
		}
		return cells
	}
}

func cellIndex(n, row, col int) int {
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(fmt.Sprintf("linmath: index [%d][%d] out of range for %dx%d matrix", row, col, n, n))
	}
	return n*row + col
}

func gridShape(grid [][]float64) Shape {
	s := Shape{Rows: len(grid)}
	if len(grid) > 0 {
		s.Cols = len(grid[0])
	}
	return s
}

// setRows validates the whole grid before writing so a failed call leaves dst
// untouched.
func setRows(dst []float64, n int, grid [][]float64) error {
	mismatch := func(cols int) error {
		return &ErrShapeMismatch{
			Kind:     KindMatrix,
			Expected: matrixShape(n),
			Actual:   Shape{Rows: len(grid), Cols: cols},
		}
	}
	if len(grid) != n {
		return mismatch(gridShape(grid).Cols)
	}
	for _, row := range grid {
		if len(row) != n {
			return mismatch(len(row))
		}
	}
	for r, row := range grid {
		copy(dst[r*n:(r+1)*n], row)
	}
	return nil
}

func splitRows(cells []float64, n int) [][]float64 {
	rows := make([][]float64, n)
	buf := make([]float64, n*n)
	copy(buf, cells)
	for r := range rows {
		rows[r] = buf[r*n : (r+1)*n : (r+1)*n]
	}
	return rows
}

func equalCells(a []float64, n int, other Matrix) bool {
	if other == nil || other.Dim() != n {
		return false
	}
	b := matrixData(other)
	if len(b) != len(a) {
		return false
	}
	for i := range a {
		if !approxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func formatMatrix(name string, cells []float64, n int) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('[')
	for r := range n {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for c := range n {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(cells[r*n+c], 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
