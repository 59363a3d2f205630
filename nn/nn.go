// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers for the GELU kernels.
package nn

import (
	"github.com/born-ml/gelu/internal/nn"
	"github.com/born-ml/gelu/tensor"
)

// GELU is an activation layer that pairs each Forward with a matching Backward.
type GELU[T tensor.DType, B tensor.Backend] = nn.GELU[T, B]

// NewGELU creates a GELU layer.
//
// Example:
//
//	backend := cpu.New()
//	act := nn.NewGELU[float32, *cpu.Backend](tensor.ApproximateNone)
//	y := act.Forward(x)
//	dx := act.Backward(dy)
func NewGELU[T tensor.DType, B tensor.Backend](approximate tensor.Approximate) *GELU[T, B] {
	return nn.NewGELU[T, B](approximate)
}
