// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the tensor types consumed by the GELU kernels.
//
// # Overview
//
// The package provides:
//   - Generic type-safe tensors (Tensor[T, B]) over float16, float32 and float64
//   - RawTensor, an owned contiguous buffer with shape and dtype
//   - Approximate, the GELU formula selector ("none" or "tanh")
//   - Backend, the contract implemented by compute backends
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
//
//	    x, _ := tensor.FromSlice([]float32{-1, 0, 1}, tensor.Shape{3}, backend)
//	    y := x.GELU(tensor.ApproximateNone)
//	    dx := x.GELUBackward(y, tensor.ApproximateNone)
//	}
package tensor
