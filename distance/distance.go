package distance

import (
	"fmt"

	"github.com/SayHelloLexa/linmath"
)

// SquaredEuclidean returns the squared Euclidean distance between a and b.
// Both vectors must have the same length.
func SquaredEuclidean(a, b linmath.Vector) (float64, error) {
	d, err := linmath.Subtract(a, b)
	if err != nil {
		return 0, err
	}
	return linmath.Dot(d, d)
}

// Euclidean returns the Euclidean distance between a and b.
// Both vectors must have the same length.
func Euclidean(a, b linmath.Vector) (float64, error) {
	d, err := linmath.Subtract(a, b)
	if err != nil {
		return 0, err
	}
	return linmath.Length(d), nil
}

// Cosine returns the cosine of the angle between a and b, in [-1, 1].
// It returns linmath.ErrDivisionByZero if either vector has zero length.
func Cosine(a, b linmath.Vector) (float64, error) {
	dot, err := linmath.Dot(a, b)
	if err != nil {
		return 0, err
	}
	la, lb := linmath.Length(a), linmath.Length(b)
	if la == 0 || lb == 0 {
		return 0, fmt.Errorf("linmath: cosine: %w", linmath.ErrDivisionByZero)
	}
	return dot / (la * lb), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b linmath.Vector) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
