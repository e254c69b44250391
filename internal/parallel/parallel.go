// Package parallel provides chunked worker execution for the bytepair trainer.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per chunk to avoid goroutine overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Per-item work is a few comparisons; keep chunks coarse.
	}
}

// NumChunks reports how many chunks Ranges will split n items into, so
// callers can pre-allocate one result slot per chunk.
func NumChunks(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		return 1
	}
	size := chunkSize(n, cfg)
	return (n + size - 1) / size
}

// Ranges splits [0, n) into contiguous chunks and runs f(chunk, start, end)
// for each on worker goroutines. Chunk indexes are dense in
// [0, NumChunks(n, cfg)) and chunks never overlap, so a worker writing only
// to its own chunk's result slot needs no locking. Falls back to a single
// sequential call when parallelism is disabled or n is too small.
func Ranges(n int, f func(chunk, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		f(0, 0, n)
		return
	}

	size := chunkSize(n, cfg)
	var wg sync.WaitGroup
	chunk := 0
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(chunk, s, e int) {
			defer wg.Done()
			f(chunk, s, e)
		}(chunk, start, end)
		chunk++
	}
	wg.Wait()
}

func chunkSize(n int, cfg Config) int {
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
}
