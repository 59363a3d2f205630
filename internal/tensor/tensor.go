package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Tensor is a generic tensor with element type T and backend B.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{-1, 0, 1}, tensor.Shape{3}, backend)
//	y := x.GELU(tensor.ApproximateNone)
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's data (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case float16.Float16:
		return any(t.raw.AsFloat16()).([]T)
	default:
		panic("unsupported type")
	}
}

// GELU applies the GELU activation through the tensor's backend.
func (t *Tensor[T, B]) GELU(approximate Approximate) *Tensor[T, B] {
	return New[T, B](t.backend.GELU(t.raw, approximate), t.backend)
}

// GELUBackward computes the input gradient of GELU at t given the output
// gradient grad. approximate must match the mode of the forward call.
func (t *Tensor[T, B]) GELUBackward(grad *Tensor[T, B], approximate Approximate) *Tensor[T, B] {
	return New[T, B](t.backend.GELUBackward(t.raw, grad.raw, approximate), t.backend)
}
