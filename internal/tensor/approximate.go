package tensor

import (
	"fmt"
	"strings"
)

// Approximate selects the GELU formula variant.
//
// The same value must be used by a forward call and the backward call that
// consumes its output, otherwise the gradient does not match the function
// that was actually evaluated.
type Approximate int

const (
	// ApproximateNone is the exact form: 0.5 * x * (1 + erf(x / sqrt(2))).
	ApproximateNone Approximate = iota

	// ApproximateTanh is the tanh form:
	// 0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3))).
	ApproximateTanh
)

// String returns the ONNX attribute spelling of the mode ("none" or "tanh").
func (a Approximate) String() string {
	switch a {
	case ApproximateNone:
		return "none"
	case ApproximateTanh:
		return "tanh"
	default:
		return fmt.Sprintf("Approximate(%d)", int(a))
	}
}

// Valid reports whether a is one of the defined modes.
func (a Approximate) Valid() bool {
	return a == ApproximateNone || a == ApproximateTanh
}

// ApproximateFromBool maps the boolean "approximate" attribute used by
// frameworks that model the mode as a flag.
func ApproximateFromBool(approximate bool) Approximate {
	if approximate {
		return ApproximateTanh
	}
	return ApproximateNone
}

// ParseApproximate parses a mode name. Accepted spellings are the ONNX
// values "none" and "tanh", their aliases "exact"/"erf", and the boolean
// strings "false"/"true".
func ParseApproximate(s string) (Approximate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "exact", "erf", "false", "0", "":
		return ApproximateNone, nil
	case "tanh", "approximate", "approx", "true", "1":
		return ApproximateTanh, nil
	default:
		return 0, fmt.Errorf("unknown GELU approximation %q (want \"none\" or \"tanh\")", s)
	}
}
