// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gelu computes the Gaussian Error Linear Unit activation and its
// gradient over tensors.
//
// Two formula variants are available:
//
//	Exact: 0.5 * x * (1 + erf(x / sqrt(2)))
//	Tanh:  0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3)))
//
// Backward returns the analytic derivative of the selected variant chained
// with the upstream gradient. The mode passed to Backward must be the one
// used by the matching Forward call.
//
// # Basic Usage
//
//	x, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Float32, tensor.CPU)
//	copy(x.AsFloat32(), []float32{-2, -1, 1, 2})
//
//	y, err := gelu.Forward(x, gelu.Exact)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dx, err := gelu.Backward(x, dy, gelu.Exact)
//
// Callers that own plain slices can skip tensors entirely:
//
//	gelu.Apply(out, in, gelu.Tanh)
//	gelu.Grad(dx, in, dout, gelu.Tanh)
//
// Forward and Backward validate shapes and dtypes and return errors. Apply
// and Grad, like the backend kernels, assume valid inputs.
package gelu
