// Package parallel provides small helpers for splitting independent
// column-wise work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Columns executes fn(j) for every column index j in [0, cols) using up to
// runtime.NumCPU() goroutines. Columns must be independent of each other;
// fn must not share mutable state across indices.
func Columns(cols int, fn func(j int)) {
	if cols == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > cols {
		workers = cols
	}

	// Contiguous chunks keep each worker on adjacent columns.
	chunk := (cols + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < cols; start += chunk {
		end := start + chunk
		if end > cols {
			end = cols
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for j := s; j < e; j++ {
				fn(j)
			}
		}(start, end)
	}
	wg.Wait()
}

// ColumnsWithThreshold runs fn sequentially when cols is at or below
// threshold, and falls back to Columns above it. Spawning goroutines for a
// handful of cheap columns costs more than it saves.
func ColumnsWithThreshold(cols, threshold int, fn func(j int)) {
	if cols <= threshold {
		for j := 0; j < cols; j++ {
			fn(j)
		}
		return
	}
	Columns(cols, fn)
}
