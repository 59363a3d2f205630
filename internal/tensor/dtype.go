// Package tensor provides the core tensor types consumed by the GELU kernels.
package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// DType is a constraint for supported tensor element types.
// Only floating-point types are supported: GELU is undefined on integers.
type DType interface {
	~float32 | ~float64 | float16.Float16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType maps a dtype name ("float16", "float32", "float64") to a DataType.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "float16", "f16", "half":
		return Float16, nil
	case "float32", "f32", "float":
		return Float32, nil
	case "float64", "f64", "double":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case float16.Float16:
		return Float16
	default:
		panic("unsupported type")
	}
}
