package stream

// elementSize is the width of one array element (float64).
const elementSize = 8

// Kernel identifies one of the four STREAM access patterns.
type Kernel int

const (
	Copy Kernel = iota
	Scale
	Add
	Triad

	numKernels
)

var kernelNames = [numKernels]string{"Copy", "Scale", "Add", "Triad"}

func (k Kernel) String() string {
	if k < 0 || k >= numKernels {
		return "unknown"
	}
	return kernelNames[k]
}

// BytesMoved is the declared data movement of one kernel execution over
// size elements: two arrays' worth for Copy/Scale, three for Add/Triad.
func (k Kernel) BytesMoved(size int) int64 {
	words := int64(2)
	if k == Add || k == Triad {
		words = 3
	}
	return words * int64(size) * elementSize
}

// apply executes the kernel over indices [lo, hi). Slices of A are never
// read while computing other elements, so disjoint ranges are safe to
// run concurrently.
func (k Kernel) apply(a, b, c []float64, scalar float64, lo, hi int) {
	switch k {
	case Copy:
		for i := lo; i < hi; i++ {
			a[i] = b[i]
		}
	case Scale:
		for i := lo; i < hi; i++ {
			a[i] = scalar * b[i]
		}
	case Add:
		for i := lo; i < hi; i++ {
			a[i] = b[i] + c[i]
		}
	case Triad:
		for i := lo; i < hi; i++ {
			a[i] = b[i] + scalar*c[i]
		}
	}
}
