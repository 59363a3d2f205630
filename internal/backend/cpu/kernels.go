package cpu

import (
	"math"

	"github.com/born-ml/gelu/internal/tensor"
	"github.com/x448/float16"
)

// GELU constants. sqrt(2/pi) is an exact constant expression so the float64
// rounding happens once. geluBeta is 3 * alpha * 0.044715, the x^2 factor of
// the derivative of the tanh argument.
const (
	geluCoeff   = 0.044715
	sqrt2OverPi = 2 / math.SqrtPi / math.Sqrt2
	geluBeta    = 3 * sqrt2OverPi * geluCoeff
	invSqrt2    = 1 / math.Sqrt2
	invSqrt2Pi  = 1 / (math.Sqrt2 * math.SqrtPi)
)

// Float is the set of element types the slice kernels run on natively.
// Half precision is promoted through float32 by the float16 kernels.
type Float interface {
	~float32 | ~float64
}

// geluExact returns 0.5 * x * (1 + erf(x/sqrt(2))).
func geluExact(x float64) float64 {
	return 0.5 * x * (1 + math.Erf(x*invSqrt2))
}

// geluTanh returns 0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3))).
func geluTanh(x float64) float64 {
	return 0.5 * x * (1 + math.Tanh(sqrt2OverPi*(x+geluCoeff*x*x*x)))
}

// geluExactGrad returns g * (Phi(x) + x * phi(x)).
func geluExactGrad(x, g float64) float64 {
	cdf := 0.5 * (1 + math.Erf(x*invSqrt2))
	pdf := invSqrt2Pi * math.Exp(-0.5*x*x)
	return g * (cdf + x*pdf)
}

// geluTanhGrad returns g * 0.5 * (1 + y + (x - x*y^2) * (alpha + beta*x^2))
// with y = tanh(alpha * (x + 0.044715 * x^3)).
func geluTanhGrad(x, g float64) float64 {
	y := math.Tanh(sqrt2OverPi * (x + geluCoeff*x*x*x))
	return g * 0.5 * (1 + y + (x-x*y*y)*(sqrt2OverPi+geluBeta*x*x))
}

// scalarFuncs returns the forward and gradient scalar functions for a mode.
func scalarFuncs(approximate tensor.Approximate) (fwd func(float64) float64, grad func(x, g float64) float64) {
	if approximate == tensor.ApproximateTanh {
		return geluTanh, geluTanhGrad
	}
	return geluExact, geluExactGrad
}

// GELUSlice writes GELU(src[i]) to dst[i]. len(dst) must be >= len(src).
// No validation is performed.
func GELUSlice[T Float](dst, src []T, approximate tensor.Approximate) {
	fwd, _ := scalarFuncs(approximate)
	for i, x := range src {
		dst[i] = T(fwd(float64(x)))
	}
}

// GELUBackwardSlice writes dout[i] * GELU'(x[i]) to dx[i].
// dx and dout must be at least as long as x. No validation is performed.
func GELUBackwardSlice[T Float](dx, x, dout []T, approximate tensor.Approximate) {
	_, grad := scalarFuncs(approximate)
	for i, v := range x {
		dx[i] = T(grad(float64(v), float64(dout[i])))
	}
}

func geluForwardF16(dst, src []float16.Float16, approximate tensor.Approximate) {
	fwd, _ := scalarFuncs(approximate)
	for i, x := range src {
		dst[i] = float16.Fromfloat32(float32(fwd(float64(x.Float32()))))
	}
}

func geluBackwardF16(dx, x, dout []float16.Float16, approximate tensor.Approximate) {
	_, grad := scalarFuncs(approximate)
	for i, v := range x {
		dx[i] = float16.Fromfloat32(float32(grad(float64(v.Float32()), float64(dout[i].Float32()))))
	}
}

// Scalar evaluates GELU at a single float64 value.
func Scalar(x float64, approximate tensor.Approximate) float64 {
	fwd, _ := scalarFuncs(approximate)
	return fwd(x)
}

// ScalarGrad evaluates g * GELU'(x) at a single float64 value.
func ScalarGrad(x, g float64, approximate tensor.Approximate) float64 {
	_, grad := scalarFuncs(approximate)
	return grad(x, g)
}
