package parallel

import (
	"sync"
	"testing"
)

func TestRows_CoversEveryRowOnce(t *testing.T) {
	tests := []struct {
		name       string
		n, workers int
	}{
		{"single worker", 10, 1},
		{"even split", 8, 4},
		{"uneven split", 10, 3},
		{"more workers than rows", 3, 16},
		{"one row", 1, 4},
		{"many rows", 1000, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			hits := make([]int, tt.n)

			Rows(tt.n, tt.workers, func(y0, y1 int) {
				if y0 < 0 || y1 > tt.n || y0 >= y1 {
					t.Errorf("bad range [%d, %d) for n=%d", y0, y1, tt.n)
					return
				}
				mu.Lock()
				for y := y0; y < y1; y++ {
					hits[y]++
				}
				mu.Unlock()
			})

			for y, c := range hits {
				if c != 1 {
					t.Errorf("row %d visited %d times, want 1", y, c)
				}
			}
		})
	}
}

func TestRows_NoRows(t *testing.T) {
	calls := 0
	Rows(0, 4, func(y0, y1 int) { calls++ })
	Rows(-5, 4, func(y0, y1 int) { calls++ })
	if calls != 0 {
		t.Errorf("fn called %d times for empty row ranges, want 0", calls)
	}
}

func TestRows_SingleWorkerRunsInline(t *testing.T) {
	// workers <= 1 must not spawn goroutines: fn mutates local state
	// without synchronization and the race detector stays quiet.
	sum := 0
	Rows(100, 1, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			sum += y
		}
	})
	if want := 99 * 100 / 2; sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}

	Rows(100, 0, func(y0, y1 int) {
		if y0 != 0 || y1 != 100 {
			t.Errorf("zero workers got range [%d, %d), want [0, 100)", y0, y1)
		}
	})
}

func TestRows_RangesAreContiguous(t *testing.T) {
	var mu sync.Mutex
	var ranges [][2]int

	Rows(17, 4, func(y0, y1 int) {
		mu.Lock()
		ranges = append(ranges, [2]int{y0, y1})
		mu.Unlock()
	})

	covered := make([]bool, 17)
	for _, r := range ranges {
		for y := r[0]; y < r[1]; y++ {
			if covered[y] {
				t.Fatalf("row %d covered by two ranges", y)
			}
			covered[y] = true
		}
	}
	for y, ok := range covered {
		if !ok {
			t.Errorf("row %d never covered", y)
		}
	}
}
