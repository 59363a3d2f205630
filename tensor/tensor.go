// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gelu/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types: float32, float64 or float16.Float16.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Approximate selects the GELU formula variant.
type Approximate = tensor.Approximate

// GELU formula variants.
const (
	ApproximateNone Approximate = tensor.ApproximateNone
	ApproximateTanh Approximate = tensor.ApproximateTanh
)

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, float16.Float16).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{0.5, 1.5}, tensor.Shape{2}, backend)
//	y := x.GELU(tensor.ApproximateTanh)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// ParseApproximate parses a GELU mode name ("none", "tanh", and aliases).
func ParseApproximate(s string) (Approximate, error) {
	return tensor.ParseApproximate(s)
}

// ApproximateFromBool maps a boolean "approximate" flag to a mode.
func ApproximateFromBool(approximate bool) Approximate {
	return tensor.ApproximateFromBool(approximate)
}

// ParseDataType parses a dtype name ("float16", "float32", "float64").
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}
