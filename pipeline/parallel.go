package pipeline

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for every i in [0,n), split into
// max(n/(GOMAXPROCS*3), 1)-sized contiguous blocks, one goroutine per
// block (§5 REDESIGN FLAGS: replaces the bespoke thread pool with a
// plain worker split, no adaptive-sleep supervisor).
func parallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	block := n / (runtime.GOMAXPROCS(0) * 3)
	if block < 1 {
		block = 1
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += block {
		hi := min(lo+block, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
