package benchmark

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// ErrAllocation is the single fatal failure kind either probe can hit:
// the workload buffers cannot be obtained. There is no retry path.
var ErrAllocation = errors.New("workload allocation failed")

// availableMemory is a variable so tests can inject a fixed figure.
var availableMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// allocHeadroom caps a workload at this share of currently available
// memory, leaving room for the runtime and the rest of the process.
const allocHeadroom = 0.9

// CheckAllocatable reports ErrAllocation when a workload of the given
// size cannot fit in available memory. When availability cannot be
// probed the allocation proceeds and the kernel's OOM handling applies.
func CheckAllocatable(need uint64) error {
	avail, err := availableMemory()
	if err != nil {
		return nil
	}
	if float64(need) > float64(avail)*allocHeadroom {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrAllocation, need, avail)
	}
	return nil
}
