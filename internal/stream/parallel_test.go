package stream

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelForCoversRangeExactlyOnce(t *testing.T) {
	cases := []struct {
		name    string
		workers int
		n       int
	}{
		{"single worker", 1, 100},
		{"even split", 4, 100},
		{"uneven split", 3, 100},
		{"more workers than elements", 16, 5},
		{"one element", 4, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hits := make([]int, tc.n)
			var mu sync.Mutex

			parallelFor(tc.workers, tc.n, func(lo, hi int) {
				mu.Lock()
				defer mu.Unlock()
				for i := lo; i < hi; i++ {
					hits[i]++
				}
			})

			for i, h := range hits {
				assert.Equal(t, 1, h, "index %d", i)
			}
		})
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	called := false
	parallelFor(4, 0, func(lo, hi int) { called = true })
	assert.False(t, called)
}

func TestParallelForJoinsBeforeReturn(t *testing.T) {
	// Every write must be visible after parallelFor returns; this is the
	// barrier the timing measurement depends on.
	const n = 10_000
	out := make([]float64, n)
	parallelFor(8, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = 1.0
		}
	})
	for i := 0; i < n; i++ {
		if out[i] != 1.0 {
			t.Fatalf("element %d not written before return", i)
		}
	}
}
