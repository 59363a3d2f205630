// Package parallel provides data-parallel execution helpers for element-wise kernels.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Element-wise transcendental kernels amortize goroutine cost around here.
	}
}

// Sequential returns a Config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunkSize returns the range width handed to each goroutine, or 0 when the
// work should run sequentially.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize || n < 2 {
		return 0
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// ForRange splits [0, n) into contiguous, disjoint ranges and calls
// f(start, end) for each of them, possibly concurrently.
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}

	chunk := cfg.chunkSize(n)
	if chunk == 0 || chunk >= n {
		f(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait() // f cannot fail
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
