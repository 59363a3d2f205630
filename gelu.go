// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gelu

import (
	"errors"
	"fmt"

	internalcpu "github.com/born-ml/gelu/internal/backend/cpu"
	"github.com/born-ml/gelu/tensor"
)

// Mode selects the GELU formula variant.
type Mode = tensor.Approximate

// Formula variants.
const (
	Exact Mode = tensor.ApproximateNone
	Tanh  Mode = tensor.ApproximateTanh
)

// Float is the set of element types accepted by Apply and Grad.
type Float interface {
	~float32 | ~float64
}

// Precondition errors returned by Forward and Backward.
var (
	ErrNilTensor        = errors.New("gelu: nil tensor")
	ErrUnsupportedDType = errors.New("gelu: unsupported dtype")
	ErrShapeMismatch    = errors.New("gelu: shape mismatch")
	ErrInvalidMode      = errors.New("gelu: invalid mode")
)

var defaultBackend = internalcpu.New()

// Forward computes GELU(x) on the default CPU backend.
func Forward(x *tensor.RawTensor, mode Mode) (*tensor.RawTensor, error) {
	return ForwardOn(defaultBackend, x, mode)
}

// ForwardOn computes GELU(x) on the given backend.
func ForwardOn(b tensor.Backend, x *tensor.RawTensor, mode Mode) (*tensor.RawTensor, error) {
	if err := validate(mode, x); err != nil {
		return nil, err
	}
	return b.GELU(x, mode), nil
}

// Backward computes the input gradient given x and the output gradient on
// the default CPU backend.
func Backward(x, outputGrad *tensor.RawTensor, mode Mode) (*tensor.RawTensor, error) {
	return BackwardOn(defaultBackend, x, outputGrad, mode)
}

// BackwardOn computes the input gradient on the given backend.
func BackwardOn(b tensor.Backend, x, outputGrad *tensor.RawTensor, mode Mode) (*tensor.RawTensor, error) {
	if err := validate(mode, x, outputGrad); err != nil {
		return nil, err
	}
	return b.GELUBackward(x, outputGrad, mode), nil
}

// Apply writes GELU(src[i]) into dst[i].
// dst must be at least as long as src.
func Apply[T Float](dst, src []T, mode Mode) {
	internalcpu.GELUSlice(dst, src, mode)
}

// Grad writes dout[i] * GELU'(x[i]) into dx[i].
// dx and dout must be at least as long as x.
func Grad[T Float](dx, x, dout []T, mode Mode) {
	internalcpu.GELUBackwardSlice(dx, x, dout, mode)
}

// Value evaluates GELU at a single value.
func Value(x float64, mode Mode) float64 {
	return internalcpu.Scalar(x, mode)
}

// Derivative evaluates dGELU/dx at a single value.
func Derivative(x float64, mode Mode) float64 {
	return internalcpu.ScalarGrad(x, 1, mode)
}

func validate(mode Mode, ts ...*tensor.RawTensor) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	for _, t := range ts {
		if t == nil {
			return ErrNilTensor
		}
	}

	first := ts[0]
	switch first.DType() {
	case tensor.Float16, tensor.Float32, tensor.Float64:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, first.DType())
	}

	for _, t := range ts[1:] {
		if t.DType() != first.DType() {
			return fmt.Errorf("%w: %s vs %s", ErrUnsupportedDType, first.DType(), t.DType())
		}
		if !t.Shape().Equal(first.Shape()) {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, first.Shape(), t.Shape())
		}
	}
	return nil
}
