package main

import (
	"github.com/born-ml/gelu/tensor"
	"github.com/x448/float16"
)

func newFilled(dtype tensor.DataType, values []float64) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(tensor.Shape{len(values)}, dtype, tensor.CPU)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case tensor.Float16:
		data := raw.AsFloat16()
		for i, v := range values {
			data[i] = float16.Fromfloat32(float32(v))
		}
	case tensor.Float32:
		data := raw.AsFloat32()
		for i, v := range values {
			data[i] = float32(v)
		}
	default:
		copy(raw.AsFloat64(), values)
	}
	return raw, nil
}

func toFloat64(raw *tensor.RawTensor) []float64 {
	out := make([]float64, raw.NumElements())
	switch raw.DType() {
	case tensor.Float16:
		for i, v := range raw.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	case tensor.Float32:
		for i, v := range raw.AsFloat32() {
			out[i] = float64(v)
		}
	default:
		copy(out, raw.AsFloat64())
	}
	return out
}

// bitSize returns the strconv bit size that prints dtype values without
// spurious digits. Half precision prints as float32.
func bitSize(dtype tensor.DataType) int {
	if dtype == tensor.Float64 {
		return 64
	}
	return 32
}
