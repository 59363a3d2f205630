package operators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/gelu/internal/tensor"
)

// OpHandler processes a node and returns output tensors.
type OpHandler func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error)

// Context provides the backend and other execution context for operators.
type Context struct {
	Backend tensor.Backend
}

// ErrUnsupportedOp is returned by Execute for unregistered operator types.
var ErrUnsupportedOp = errors.New("unsupported operator")

// Registry maps operator types to handler functions.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry creates a new operator registry with all supported operators.
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]OpHandler),
	}

	r.registerActivations()

	return r
}

// Register adds a custom operator handler, replacing any existing one.
func (r *Registry) Register(opType string, handler OpHandler) {
	r.handlers[opType] = handler
}

// Get returns the handler for an operator type.
func (r *Registry) Get(opType string) (OpHandler, bool) {
	h, ok := r.handlers[opType]
	return h, ok
}

// Execute runs an operator with the given inputs.
func (r *Registry) Execute(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[node.OpType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOp, node.OpType)
	}
	if ctx == nil || ctx.Backend == nil {
		return nil, fmt.Errorf("%s: no backend in execution context", node.OpType)
	}

	outputs, err := handler(ctx, node, inputs)
	if err != nil && node.Name != "" {
		return nil, fmt.Errorf("node %q: %w", node.Name, err)
	}
	return outputs, err
}

// SupportedOps returns a sorted list of all supported operator types.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
