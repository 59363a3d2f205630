// Package nn implements neural network layers built on the GELU kernels.
package nn

import (
	"github.com/born-ml/gelu/internal/autodiff/ops"
	"github.com/born-ml/gelu/internal/tensor"
)

// GELU is a Gaussian Error Linear Unit activation layer.
//
// The layer remembers the op recorded by its most recent Forward call, so a
// following Backward differentiates the same formula on the same input.
// A layer instance is not safe for concurrent Forward/Backward pairs; use one
// instance per concurrent pass.
//
// Example:
//
//	act := nn.NewGELU[float32, *cpu.CPUBackend](tensor.ApproximateTanh)
//	y := act.Forward(x)
//	dx := act.Backward(dy)
type GELU[T tensor.DType, B tensor.Backend] struct {
	approximate tensor.Approximate
	last        *ops.GELUOp
}

// NewGELU creates a GELU layer using the given formula variant.
func NewGELU[T tensor.DType, B tensor.Backend](approximate tensor.Approximate) *GELU[T, B] {
	return &GELU[T, B]{approximate: approximate}
}

// Approximate returns the formula variant used by the layer.
func (g *GELU[T, B]) Approximate() tensor.Approximate {
	return g.approximate
}

// Forward applies GELU and records the op for Backward.
func (g *GELU[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	backend := input.Backend()
	g.last = ops.ApplyGELU(backend, input.Raw(), g.approximate)
	return tensor.New[T, B](g.last.Output(), backend)
}

// Backward returns dL/dinput for the most recent Forward call.
// Panics if Forward has not been called.
func (g *GELU[T, B]) Backward(outputGrad *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	if g.last == nil {
		panic("GELU: Backward called before Forward")
	}
	backend := outputGrad.Backend()
	grads := g.last.Backward(outputGrad.Raw(), backend)
	return tensor.New[T, B](grads[0], backend)
}
