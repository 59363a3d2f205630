package operators

import (
	"errors"
	"fmt"

	"github.com/born-ml/gelu/internal/tensor"
)

// Precondition errors reported by the GELU handlers.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInvalidAttribute = errors.New("invalid attribute")
)

// registerActivations adds the GELU family to the registry.
func (r *Registry) registerActivations() {
	r.Register("Gelu", handleGelu)
	r.Register("FastGelu", handleFastGelu)
	r.Register("GeluGrad", handleGeluGrad)
	r.Register("FastGeluGrad", handleFastGeluGrad)
}

func handleGelu(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	approximate, err := approximateAttr(node)
	if err != nil {
		return nil, fmt.Errorf("gelu: %w", err)
	}
	return geluForward(ctx, "gelu", inputs, approximate)
}

func handleFastGelu(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return geluForward(ctx, "fastGelu", inputs, tensor.ApproximateTanh)
}

func handleGeluGrad(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	approximate, err := approximateAttr(node)
	if err != nil {
		return nil, fmt.Errorf("geluGrad: %w", err)
	}
	return geluBackward(ctx, "geluGrad", inputs, approximate)
}

func handleFastGeluGrad(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return geluBackward(ctx, "fastGeluGrad", inputs, tensor.ApproximateTanh)
}

// geluForward expects inputs [X].
func geluForward(ctx *Context, op string, inputs []*tensor.RawTensor, approximate tensor.Approximate) ([]*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%s requires 1 input, got %d: %w", op, len(inputs), ErrInvalidInput)
	}
	if err := checkFloat(op, "X", inputs[0]); err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{ctx.Backend.GELU(inputs[0], approximate)}, nil
}

// geluBackward expects inputs [dY, X] and returns [dX].
func geluBackward(ctx *Context, op string, inputs []*tensor.RawTensor, approximate tensor.Approximate) ([]*tensor.RawTensor, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("%s requires 2 inputs (dY, X), got %d: %w", op, len(inputs), ErrInvalidInput)
	}
	dy, x := inputs[0], inputs[1]
	if err := checkFloat(op, "dY", dy); err != nil {
		return nil, err
	}
	if err := checkFloat(op, "X", x); err != nil {
		return nil, err
	}
	if dy.DType() != x.DType() {
		return nil, fmt.Errorf("%s: dY is %s but X is %s: %w", op, dy.DType(), x.DType(), ErrUnsupportedDType)
	}
	if !dy.Shape().Equal(x.Shape()) {
		return nil, fmt.Errorf("%s: dY shape %v does not match X shape %v: %w", op, dy.Shape(), x.Shape(), ErrShapeMismatch)
	}
	return []*tensor.RawTensor{ctx.Backend.GELUBackward(x, dy, approximate)}, nil
}

func checkFloat(op, name string, t *tensor.RawTensor) error {
	if t == nil {
		return fmt.Errorf("%s: input %s is nil: %w", op, name, ErrInvalidInput)
	}
	switch t.DType() {
	case tensor.Float16, tensor.Float32, tensor.Float64:
		return nil
	default:
		return fmt.Errorf("%s: input %s has dtype %s: %w", op, name, t.DType(), ErrUnsupportedDType)
	}
}

// approximateAttr reads the "approximate" attribute. ONNX Gelu stores it as a
// string ("none" or "tanh"); exporters that model it as a boolean emit an INT.
// A missing attribute means the exact form.
func approximateAttr(node *Node) (tensor.Approximate, error) {
	attr := GetAttr(node, "approximate")
	if attr == nil {
		return tensor.ApproximateNone, nil
	}

	switch {
	case attr.Type == AttributeString || (attr.Type == AttributeUndefined && len(attr.S) > 0):
		a, err := tensor.ParseApproximate(string(attr.S))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidAttribute, err)
		}
		return a, nil
	case attr.Type == AttributeInt || attr.Type == AttributeUndefined:
		switch attr.I {
		case 0:
			return tensor.ApproximateNone, nil
		case 1:
			return tensor.ApproximateTanh, nil
		}
		return 0, fmt.Errorf("%w: approximate=%d (want 0 or 1)", ErrInvalidAttribute, attr.I)
	default:
		return 0, fmt.Errorf("%w: approximate has attribute type %d", ErrInvalidAttribute, attr.Type)
	}
}
