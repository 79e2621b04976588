package flops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPrefersOptimizedBackend(t *testing.T) {
	// The gonum backend registers itself at init, so detection must not
	// fall back to the reference loop.
	b := Detect()
	require.NotNil(t, b)
	assert.Equal(t, "gonum/blas64", b.Name())
}

func TestDetectFallsBackWithoutRegistration(t *testing.T) {
	saved := optimized
	optimized = nil
	defer func() { optimized = saved }()

	b := Detect()
	require.NotNil(t, b)
	assert.Equal(t, "reference", b.Name())
}

func TestReferenceMultiplyHandVerified(t *testing.T) {
	// | 1 2 |   | 5 6 |   | 19 22 |
	// | 3 4 | x | 7 8 | = | 43 50 |
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)

	Reference().Multiply(2, a, b, c)

	want := []float64{19, 22, 43, 50}
	for i := range want {
		assert.InDelta(t, want[i], c[i], 1e-12, "cell %d", i)
	}
}

func TestOptimizedMultiplyHandVerified(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)

	Detect().Multiply(2, a, b, c)

	want := []float64{19, 22, 43, 50}
	for i := range want {
		assert.InDelta(t, want[i], c[i], 1e-12, "cell %d", i)
	}
}

func TestBackendsAgree(t *testing.T) {
	const n = 17

	rng := rand.New(rand.NewSource(7))
	a := make([]float64, n*n)
	b := make([]float64, n*n)
	for i := range a {
		a[i] = rng.Float64()
		b[i] = rng.Float64()
	}

	ref := make([]float64, n*n)
	opt := make([]float64, n*n)
	Reference().Multiply(n, a, b, ref)
	Detect().Multiply(n, a, b, opt)

	for i := range ref {
		// summation order differs between backends
		assert.InDelta(t, ref[i], opt[i], 1e-9, "cell %d", i)
	}
}
