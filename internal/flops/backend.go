package flops

// Backend multiplies two row-major n×n matrices a and b into c.
// Implementations are free to parallelize internally.
type Backend interface {
	Name() string
	Multiply(n int, a, b, c []float64)
}

// referenceBackend is the portable triple-loop path: for each output
// cell, accumulate products over the shared dimension.
type referenceBackend struct{}

func (referenceBackend) Name() string { return "reference" }

func (referenceBackend) Multiply(n int, a, b, c []float64) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// Reference returns the fallback triple-loop backend.
func Reference() Backend { return referenceBackend{} }

// optimized is set from init by an accelerated backend when one is
// linked into the binary.
var optimized Backend

func register(b Backend) { optimized = b }

// Detect probes for an accelerated backend and returns it, falling back
// to the reference loop when none is registered.
func Detect() Backend {
	if optimized != nil {
		return optimized
	}
	return referenceBackend{}
}
