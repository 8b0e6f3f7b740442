// Package distance provides distance measures between linmath vectors.
//
// All functions validate that both vectors have the same length and report
// *linmath.ErrDimensionMismatch otherwise.
//
// # Supported Metrics
//
//   - MetricEuclidean: straight-line distance |a - b|
//   - MetricSquaredEuclidean: |a - b|², cheaper when only ordering matters
//   - MetricCosine: cosine of the angle between a and b
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	f, err := distance.Provider(distance.MetricCosine)
//	sim, err := f(a, b)
package distance
