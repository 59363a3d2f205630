package cpu

import (
	"fmt"

	"github.com/born-ml/gelu/internal/parallel"
	"github.com/born-ml/gelu/internal/tensor"
)

// GELU applies the Gaussian Error Linear Unit element-wise.
//
//	exact: 0.5 * x * (1 + erf(x / sqrt(2)))
//	tanh:  0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3)))
//
// The input is not modified. Panics on unsupported dtypes or unknown modes.
func (cpu *CPUBackend) GELU(x *tensor.RawTensor, approximate tensor.Approximate) *tensor.RawTensor {
	checkApproximate("gelu", approximate)

	result := tensor.NewRawLike(x)
	n := x.NumElements()

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		parallel.ForRange(n, func(s, e int) {
			GELUSlice(dst[s:e], src[s:e], approximate)
		}, cpu.parallel)
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		parallel.ForRange(n, func(s, e int) {
			GELUSlice(dst[s:e], src[s:e], approximate)
		}, cpu.parallel)
	case tensor.Float16:
		src, dst := x.AsFloat16(), result.AsFloat16()
		parallel.ForRange(n, func(s, e int) {
			geluForwardF16(dst[s:e], src[s:e], approximate)
		}, cpu.parallel)
	default:
		panic(fmt.Sprintf("gelu: unsupported dtype %s", x.DType()))
	}

	return result
}

// GELUBackward computes the input gradient of GELU:
//
//	exact: grad * (0.5 * (1 + erf(x / sqrt(2))) + x / sqrt(2*pi) * exp(-x^2 / 2))
//	tanh:  grad * 0.5 * (1 + y + (x - x*y^2) * (alpha + beta*x^2))
//
// where alpha = sqrt(2/pi), beta = 3 * alpha * 0.044715 and
// y = tanh(alpha * (x + 0.044715 * x^3)).
//
// x and outputGrad must have the same shape and dtype.
func (cpu *CPUBackend) GELUBackward(x, outputGrad *tensor.RawTensor, approximate tensor.Approximate) *tensor.RawTensor {
	checkApproximate("gelu backward", approximate)
	if !x.SameLayout(outputGrad) {
		panic(fmt.Sprintf("gelu backward: input %s%v and output gradient %s%v do not match",
			x.DType(), x.Shape(), outputGrad.DType(), outputGrad.Shape()))
	}

	inputGrad := tensor.NewRawLike(x)
	n := x.NumElements()

	switch x.DType() {
	case tensor.Float32:
		xs, dout, dx := x.AsFloat32(), outputGrad.AsFloat32(), inputGrad.AsFloat32()
		parallel.ForRange(n, func(s, e int) {
			GELUBackwardSlice(dx[s:e], xs[s:e], dout[s:e], approximate)
		}, cpu.parallel)
	case tensor.Float64:
		xs, dout, dx := x.AsFloat64(), outputGrad.AsFloat64(), inputGrad.AsFloat64()
		parallel.ForRange(n, func(s, e int) {
			GELUBackwardSlice(dx[s:e], xs[s:e], dout[s:e], approximate)
		}, cpu.parallel)
	case tensor.Float16:
		xs, dout, dx := x.AsFloat16(), outputGrad.AsFloat16(), inputGrad.AsFloat16()
		parallel.ForRange(n, func(s, e int) {
			geluBackwardF16(dx[s:e], xs[s:e], dout[s:e], approximate)
		}, cpu.parallel)
	default:
		panic(fmt.Sprintf("gelu backward: unsupported dtype %s", x.DType()))
	}

	return inputGrad
}

func checkApproximate(op string, approximate tensor.Approximate) {
	if !approximate.Valid() {
		panic(fmt.Sprintf("%s: unknown approximation %s", op, approximate))
	}
}
