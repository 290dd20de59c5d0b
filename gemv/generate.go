package gemv

import "math/rand/v2"

const (
	// Seed is the fixed seed of Generate, so every run sees the same data.
	Seed uint64 = 0

	// MaxValue bounds generated elements to [0, MaxValue). Small values keep
	// row sums well inside the range of 32-bit types for realistic sizes.
	MaxValue = 50
)

// Generate returns a rows x cols row-major matrix and a cols-element vector
// filled with pseudo-random values in [0, MaxValue) drawn from Seed.
func Generate[T Element](rows, cols int) (a, b []T) {
	return GenerateSeeded[T](rows, cols, Seed)
}

// GenerateSeeded is like Generate with an explicit seed. The matrix is
// filled first, then the vector, from one stream, so the same (rows, cols,
// seed) always yields bit-identical buffers.
func GenerateSeeded[T Element](rows, cols int, seed uint64) (a, b []T) {
	rng := rand.New(rand.NewPCG(seed, seed))

	a = make([]T, rows*cols)
	for i := range a {
		a[i] = T(rng.IntN(MaxValue))
	}

	b = make([]T, cols)
	for i := range b {
		b[i] = T(rng.IntN(MaxValue))
	}
	return a, b
}
