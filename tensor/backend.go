// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/gelu/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - backend/cpu: pure Go, data-parallel over element ranges
//
// Example:
//
//	import (
//	    "github.com/born-ml/gelu/backend/cpu"
//	    "github.com/born-ml/gelu/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	y := backend.GELU(x, tensor.ApproximateNone)
type Backend = tensor.Backend
