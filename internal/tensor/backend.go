package tensor

// Backend defines the interface that compute backends implement to serve
// GELU. Backends own output allocation; kernels never mutate their inputs.
//
// Implementations:
//   - CPU: pure Go, data-parallel over element ranges
//
// Preconditions (matching shapes and a floating-point dtype shared by all
// operands) are the caller's responsibility. Backends panic when they are
// violated, mirroring how a host framework aborts on a contract violation.
type Backend interface {
	// GELU applies the activation element-wise and returns a new tensor.
	GELU(x *RawTensor, approximate Approximate) *RawTensor

	// GELUBackward returns dL/dx given x and dL/dy for y = GELU(x).
	GELUBackward(x, outputGrad *RawTensor, approximate Approximate) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
