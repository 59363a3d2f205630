// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the GELU kernels.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float16, Float32 and Float64 support
//   - Exact (erf) and tanh-approximated GELU, forward and backward
//   - Data-parallel execution over disjoint element ranges
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gelu/backend/cpu"
//	    "github.com/born-ml/gelu/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float32{-1, 0, 1}, tensor.Shape{3}, backend)
//	    y := x.GELU(tensor.ApproximateNone)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each call allocates its own
// output and does not share mutable state; calls with different modes may
// run concurrently.
package cpu
