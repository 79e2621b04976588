package stream

import "sync"

// parallelFor splits [0, n) into contiguous disjoint chunks, one per
// worker, and blocks until every worker has finished. The join happens
// inside the caller's timed region so the stop time covers all workers.
func parallelFor(workers, n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
