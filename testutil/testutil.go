package testutil

import (
	"math/rand"
	"sync"

	"github.com/SayHelloLexa/linmath"
)

// Default range of generated components. Wide enough to exercise sign and
// magnitude, narrow enough that sums stay well inside the 1e-7 tolerance.
const (
	DefaultMin = -100.0
	DefaultMax = 100.0
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64Range in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Vector returns a random vector with n components in [DefaultMin, DefaultMax).
// It panics if n is not 2, 3 or 4.
func (r *RNG) Vector(n int) linmath.Vector {
	c := make([]float64, n)
	r.FillUniformRange(c, DefaultMin, DefaultMax)
	v, err := linmath.NewVector(c)
	if err != nil {
		panic(err)
	}
	return v
}

// Vectors returns num random vectors with n components each.
func (r *RNG) Vectors(num, n int) []linmath.Vector {
	vs := make([]linmath.Vector, num)
	for i := range vs {
		vs[i] = r.Vector(n)
	}
	return vs
}

// Vector3 returns a random 3-component vector.
func (r *RNG) Vector3() *linmath.Vector3 {
	var c [3]float64
	r.FillUniformRange(c[:], DefaultMin, DefaultMax)
	return linmath.NewVector3(c[0], c[1], c[2])
}

// Matrix returns a random n×n matrix with cells in [DefaultMin, DefaultMax).
// It panics if n is not 3 or 4.
func (r *RNG) Matrix(n int) linmath.Matrix {
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		r.FillUniformRange(grid[i], DefaultMin, DefaultMax)
	}
	m, err := linmath.NewMatrix(grid)
	if err != nil {
		panic(err)
	}
	return m
}

// NonZeroScalar returns a random scalar in [DefaultMin, DefaultMax) whose
// magnitude is at least 1e-3.
func (r *RNG) NonZeroScalar() float64 {
	for {
		k := r.Float64Range(DefaultMin, DefaultMax)
		if k > 1e-3 || k < -1e-3 {
			return k
		}
	}
}
