// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/gelu/internal/backend/cpu"
	"github.com/born-ml/gelu/internal/parallel"
	"github.com/born-ml/gelu/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how element ranges are spread across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using all available CPUs.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gelu/backend/cpu"
//	    "github.com/born-ml/gelu/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	    y := backend.GELU(x, tensor.ApproximateTanh)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallelConfig returns the parallel settings used by New.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns settings that keep all work on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
