package kernel

// Add stores a[i] + b[i] into dst.
//
// SAFETY: assumes len(a) == len(b) and len(dst) >= len(a).
func Add(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Sub stores a[i] - b[i] into dst.
//
// SAFETY: assumes len(a) == len(b) and len(dst) >= len(a).
func Sub(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Scale stores a[i] * s into dst. dst may alias a.
func Scale(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

// Div stores a[i] / s into dst. dst may alias a.
//
// The quotient is computed per element rather than as a multiplication by 1/s
// so results round the same way as a direct division.
func Div(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] / s
	}
}

// Fill sets every element of dst to v.
func Fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

// Dot returns the sum of a[i] * b[i].
//
// SAFETY: assumes len(a) == len(b).
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredNorm returns the sum of squares of a.
func SquaredNorm(a []float64) float64 {
	return Dot(a, a)
}
