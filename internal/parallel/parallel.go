// Package parallel provides row-range fan-out for the gradient
// renderer.
//
// The destination surface is split into contiguous row ranges, one per
// worker, and each range is filled from its own goroutine. Every pixel
// belongs to exactly one range, so workers never write the same bytes
// and need no synchronization beyond the final join.
package parallel

import "sync"

// Rows runs fn over the row range [0, n) split across the requested
// number of workers.
//
// With workers <= 1, or when n is too small to split, fn runs once on
// the calling goroutine. Otherwise each contiguous range [y0, y1) runs
// on its own goroutine and Rows returns after all of them complete.
//
// fn must be safe to call concurrently for disjoint ranges.
func Rows(n, workers int, fn func(y0, y1 int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < n; y0 += chunk {
		y1 := y0 + chunk
		if y1 > n {
			y1 = n
		}

		wg.Add(1)
		go func(a, b int) {
			defer wg.Done()
			fn(a, b)
		}(y0, y1)
	}
	wg.Wait()
}
