package tensor

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend records the calls it receives and returns copies of its
// inputs, so Tensor plumbing can be tested without a real backend.
type MockBackend struct {
	calls           []string
	lastApproximate Approximate
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// GELU returns a copy of x.
func (m *MockBackend) GELU(x *RawTensor, approximate Approximate) *RawTensor {
	m.calls = append(m.calls, "GELU")
	m.lastApproximate = approximate
	return x.Clone()
}

// GELUBackward returns a copy of outputGrad.
func (m *MockBackend) GELUBackward(_, outputGrad *RawTensor, approximate Approximate) *RawTensor {
	m.calls = append(m.calls, "GELUBackward")
	m.lastApproximate = approximate
	return outputGrad.Clone()
}
