package kernel

// MatMul stores the n×n product a·b into dst:
//
//	dst[x][y] = Σi a[x][i] * b[i][y]
//
// dst must not alias a or b.
func MatMul(dst, a, b []float64, n int) {
	for x := range n {
		for y := range n {
			var sum float64
			for i := range n {
				sum += a[x*n+i] * b[i*n+y]
			}
			dst[x*n+y] = sum
		}
	}
}

// MatVec stores the product of the n×n matrix m with v into dst:
//
//	dst[i] = Σj v[j] * m[i][j]
//
// dst must not alias v.
func MatVec(dst, m, v []float64, n int) {
	for i := range n {
		var sum float64
		row := m[i*n : (i+1)*n]
		for j := range n {
			sum += v[j] * row[j]
		}
		dst[i] = sum
	}
}

// Transpose stores the transpose of the n×n matrix m into dst.
// dst must not alias m.
func Transpose(dst, m []float64, n int) {
	for x := range n {
		for y := range n {
			dst[x*n+y] = m[y*n+x]
		}
	}
}
