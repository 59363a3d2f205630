// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gelu_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/gelu"
	"github.com/born-ml/gelu/backend/cpu"
	"github.com/born-ml/gelu/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw64(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(r.AsFloat64(), values)
	return r
}

func TestForwardBackward(t *testing.T) {
	x := raw64(t, tensor.Shape{2, 2}, -1, 0, 1, 2)
	dy := raw64(t, tensor.Shape{2, 2}, 1, 1, 1, 1)

	y, err := gelu.Forward(x, gelu.Exact)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, y.Shape())
	assert.InDelta(t, 0.8413447460685429, y.AsFloat64()[2], 1e-12)
	assert.InDelta(t, 1.9544997361036416, y.AsFloat64()[3], 1e-12)

	dx, err := gelu.Backward(x, dy, gelu.Exact)
	require.NoError(t, err)
	assert.InDelta(t, 1.0833154705876864, dx.AsFloat64()[2], 1e-12)
	assert.InDelta(t, 0.5, dx.AsFloat64()[1], 1e-12)
}

func TestForwardOn_SequentialBackend(t *testing.T) {
	b := cpu.NewWithConfig(cpu.SequentialConfig())
	x := raw64(t, tensor.Shape{1}, 1)

	y, err := gelu.ForwardOn(b, x, gelu.Tanh)
	require.NoError(t, err)
	assert.InDelta(t, 0.8411919906082768, y.AsFloat64()[0], 1e-12)

	dx, err := gelu.BackwardOn(b, x, raw64(t, tensor.Shape{1}, 2), gelu.Tanh)
	require.NoError(t, err)
	assert.InDelta(t, 2*1.0829640838457826, dx.AsFloat64()[0], 1e-12)
}

func TestPreconditionErrors(t *testing.T) {
	x := raw64(t, tensor.Shape{2}, 1, 2)

	_, err := gelu.Forward(nil, gelu.Exact)
	assert.ErrorIs(t, err, gelu.ErrNilTensor)

	_, err = gelu.Forward(x, gelu.Mode(9))
	assert.ErrorIs(t, err, gelu.ErrInvalidMode)

	_, err = gelu.Backward(x, nil, gelu.Exact)
	assert.ErrorIs(t, err, gelu.ErrNilTensor)

	// Same element count, different shape.
	_, err = gelu.Backward(raw64(t, tensor.Shape{2, 1}, 1, 2), x, gelu.Exact)
	assert.ErrorIs(t, err, gelu.ErrShapeMismatch)

	f32, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	_, err = gelu.Backward(x, f32, gelu.Tanh)
	assert.ErrorIs(t, err, gelu.ErrUnsupportedDType)
}

func TestApplyGrad(t *testing.T) {
	in := []float32{-2, -1, 0, 1, 2}
	out := make([]float32, len(in))
	dx := make([]float32, len(in))
	dout := []float32{1, 1, 1, 1, 1}

	gelu.Apply(out, in, gelu.Tanh)
	gelu.Grad(dx, in, dout, gelu.Tanh)

	for i, x := range in {
		assert.InDelta(t, gelu.Value(float64(x), gelu.Tanh), out[i], 1e-6)
		assert.InDelta(t, gelu.Derivative(float64(x), gelu.Tanh), dx[i], 1e-6)
	}
}

func TestValueProperties(t *testing.T) {
	for _, mode := range []gelu.Mode{gelu.Exact, gelu.Tanh} {
		assert.Zero(t, gelu.Value(0, mode))
		assert.InDelta(t, 50, gelu.Value(50, mode), 1e-12)
		assert.InDelta(t, 0, gelu.Value(-50, mode), 1e-12)

		// GELU(x) - GELU(-x) = x for both variants.
		for _, x := range []float64{0.3, 1.1, 2.7} {
			assert.InDelta(t, x, gelu.Value(x, mode)-gelu.Value(-x, mode), 1e-12)
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, mode := range []gelu.Mode{gelu.Exact, gelu.Tanh} {
		for _, x := range []float64{-3, -1, -0.1, 0.4, 1, 2.2} {
			numeric := (gelu.Value(x+h, mode) - gelu.Value(x-h, mode)) / (2 * h)
			assert.InDelta(t, numeric, gelu.Derivative(x, mode), 1e-4, "mode=%s x=%v", mode, x)
		}
	}
}

func ExampleForward() {
	x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
	copy(x.AsFloat64(), []float64{-1, 0, 1})

	y, _ := gelu.Forward(x, gelu.Exact)
	for _, v := range y.AsFloat64() {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// -0.1587
	// 0.0000
	// 0.8413
}
