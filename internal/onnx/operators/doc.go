// Package operators maps ONNX-style operator nodes onto backend GELU kernels.
//
// The package provides a registry of operator handlers. Each handler validates
// arity, dtypes, shapes and attributes, then delegates to the backend. This is
// the layer that rejects precondition violations: the kernels themselves
// assume valid inputs.
//
// Registered operators:
//   - Gelu (ONNX opset 20): attribute "approximate" = "none" | "tanh"
//   - FastGelu: tanh approximation
//   - GeluGrad, FastGeluGrad: input gradient from (dY, X)
package operators
