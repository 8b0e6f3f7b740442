package linmath

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Epsilon is the absolute tolerance used by Equal on vectors and matrices.
const Epsilon = 1e-7

// Vector is a fixed-length tuple of float64 components.
//
// The length is fixed when the vector is constructed; SetComponents only
// accepts data of the same length. The concrete shapes are *Vector2, *Vector3
// and *Vector4.
type Vector interface {
	// Len returns the number of components.
	Len() int
	// At returns the i'th component. It panics if i is out of range.
	At(i int) float64
	// Components returns a copy of the components in order.
	Components() []float64
	// SetComponents replaces all components. It returns *ErrShapeMismatch and
	// leaves the vector unchanged if len(c) != Len().
	SetComponents(c []float64) error
	// Equal reports whether other has the same length and every component
	// differs by less than Epsilon.
	Equal(other Vector) bool
}

// Vector2 is a 2-component vector.
type Vector2 struct {
	c [2]float64
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float64) *Vector2 {
	return &Vector2{c: [2]float64{x, y}}
}

func (v *Vector2) Len() int                        { return 2 }
func (v *Vector2) At(i int) float64                { return v.c[i] }
func (v *Vector2) X() float64                      { return v.c[0] }
func (v *Vector2) Y() float64                      { return v.c[1] }
func (v *Vector2) Components() []float64           { return slices.Clone(v.c[:]) }
func (v *Vector2) SetComponents(c []float64) error { return setComponents(v.c[:], c) }
func (v *Vector2) Equal(other Vector) bool         { return equalComponents(v.c[:], other) }
func (v *Vector2) String() string                  { return formatVector("Vector2", v.c[:]) }

// Vector3 is a 3-component vector.
type Vector3 struct {
	c [3]float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{c: [3]float64{x, y, z}}
}

func (v *Vector3) Len() int                        { return 3 }
func (v *Vector3) At(i int) float64                { return v.c[i] }
func (v *Vector3) X() float64                      { return v.c[0] }
func (v *Vector3) Y() float64                      { return v.c[1] }
func (v *Vector3) Z() float64                      { return v.c[2] }
func (v *Vector3) Components() []float64           { return slices.Clone(v.c[:]) }
func (v *Vector3) SetComponents(c []float64) error { return setComponents(v.c[:], c) }
func (v *Vector3) Equal(other Vector) bool         { return equalComponents(v.c[:], other) }
func (v *Vector3) String() string                  { return formatVector("Vector3", v.c[:]) }

// Vector4 is a 4-component vector.
type Vector4 struct {
	c [4]float64
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float64) *Vector4 {
	return &Vector4{c: [4]float64{x, y, z, w}}
}

func (v *Vector4) Len() int                        { return 4 }
func (v *Vector4) At(i int) float64                { return v.c[i] }
func (v *Vector4) X() float64                      { return v.c[0] }
func (v *Vector4) Y() float64                      { return v.c[1] }
func (v *Vector4) Z() float64                      { return v.c[2] }
func (v *Vector4) W() float64                      { return v.c[3] }
func (v *Vector4) Components() []float64           { return slices.Clone(v.c[:]) }
func (v *Vector4) SetComponents(c []float64) error { return setComponents(v.c[:], c) }
func (v *Vector4) Equal(other Vector) bool         { return equalComponents(v.c[:], other) }
func (v *Vector4) String() string                  { return formatVector("Vector4", v.c[:]) }

// NewVector builds the concrete vector matching len(components).
// It returns *ErrUnsupportedShape for lengths other than 2, 3 and 4.
func NewVector(components []float64) (Vector, error) {
	switch len(components) {
	case 2:
		return NewVector2(components[0], components[1]), nil
	case 3:
		return NewVector3(components[0], components[1], components[2]), nil
	case 4:
		return NewVector4(components[0], components[1], components[2], components[3]), nil
	default:
		return nil, &ErrUnsupportedShape{Kind: KindVector, Shape: vectorShape(len(components))}
	}
}

// vectorData returns the backing storage of the built-in shapes and a copy for
// any other implementation. The result must not be written to.
func vectorData(v Vector) []float64 {
	switch v := v.(type) {
	case *Vector2:
		return v.c[:]
	case *Vector3:
		return v.c[:]
	case *Vector4:
		return v.c[:]
	default:
		return v.Components()
	}
}

func setComponents(dst, src []float64) error {
	if len(src) != len(dst) {
		return &ErrShapeMismatch{
			Kind:     KindVector,
			Expected: vectorShape(len(dst)),
			Actual:   vectorShape(len(src)),
		}
	}
	copy(dst, src)
	return nil
}

func equalComponents(a []float64, other Vector) bool {
	if other == nil || other.Len() != len(a) {
		return false
	}
	b := vectorData(other)
	for i := range a {
		if !approxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func formatVector(name string, c []float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, x := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
