// Package cpu implements the pure Go CPU backend for the GELU kernels.
package cpu

import (
	"github.com/born-ml/gelu/internal/parallel"
	"github.com/born-ml/gelu/internal/tensor"
)

// CPUBackend implements tensor operations on CPU, splitting element-wise
// work across goroutines according to its parallel configuration.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// ParallelConfig returns the parallel execution settings in use.
func (cpu *CPUBackend) ParallelConfig() parallel.Config {
	return cpu.parallel
}
