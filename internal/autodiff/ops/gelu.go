package ops

import (
	"github.com/born-ml/gelu/internal/tensor"
)

// GELUOp represents the GELU activation: y = x * Phi(x), with Phi either the
// exact normal CDF or its tanh approximation.
//
// The op records the approximation used by the forward pass so the backward
// pass always differentiates the function that was actually evaluated.
type GELUOp struct {
	input       *tensor.RawTensor
	output      *tensor.RawTensor
	approximate tensor.Approximate
}

// NewGELUOp creates a new GELU operation.
func NewGELUOp(input, output *tensor.RawTensor, approximate tensor.Approximate) *GELUOp {
	return &GELUOp{
		input:       input,
		output:      output,
		approximate: approximate,
	}
}

// ApplyGELU runs GELU on the backend and returns the op recording it.
func ApplyGELU(backend tensor.Backend, input *tensor.RawTensor, approximate tensor.Approximate) *GELUOp {
	return NewGELUOp(input, backend.GELU(input, approximate), approximate)
}

// Inputs returns the input tensors.
func (op *GELUOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *GELUOp) Output() *tensor.RawTensor {
	return op.output
}

// Approximate returns the approximation recorded at forward time.
func (op *GELUOp) Approximate() tensor.Approximate {
	return op.approximate
}

// Backward computes the gradient for GELU.
//
// The derivative cannot be recovered from the output alone, so it is
// evaluated from the saved input.
func (op *GELUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.GELUBackward(op.input, outputGrad, op.approximate)}
}
