package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromSlice(t *testing.T) {
	backend := &MockBackend{}

	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, Float64, x.DType())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())
	assert.Same(t, backend, x.Backend())
}

func TestFromSlice_ShapeMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, &MockBackend{})
	assert.Error(t, err)
}

func TestFromSlice_Float16(t *testing.T) {
	data := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(-2)}
	x, err := FromSlice(data, Shape{2}, &MockBackend{})
	require.NoError(t, err)

	assert.Equal(t, Float16, x.DType())
	assert.Equal(t, float32(-2), x.Data()[1].Float32())
}

func TestTensor_GELUDelegatesToBackend(t *testing.T) {
	backend := &MockBackend{}
	x, err := FromSlice([]float32{-1, 0, 1}, Shape{3}, backend)
	require.NoError(t, err)

	y := x.GELU(ApproximateTanh)
	assert.Equal(t, []string{"GELU"}, backend.calls)
	assert.Equal(t, ApproximateTanh, backend.lastApproximate)
	assert.Equal(t, x.Data(), y.Data())
	assert.NotSame(t, x.Raw(), y.Raw())

	g, err := FromSlice([]float32{3, 4, 5}, Shape{3}, backend)
	require.NoError(t, err)
	dx := x.GELUBackward(g, ApproximateNone)
	assert.Equal(t, []string{"GELU", "GELUBackward"}, backend.calls)
	assert.Equal(t, ApproximateNone, backend.lastApproximate)
	assert.Equal(t, []float32{3, 4, 5}, dx.Data())
}
