// Package dispatch maps operation names to report builders and coerces the
// loosely typed arguments delivered by a transport into typed values.
package dispatch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masmgr/git-history-mcp/internal/apperr"
)

// Handler runs one operation with coerced arguments and returns report text.
type Handler func(ctx context.Context, args Args) (string, error)

// Operation is a registered, externally callable operation.
type Operation struct {
	Name        string
	Description string
	Fields      []Field
	Handler     Handler
}

// Dispatcher is the operation registry.
type Dispatcher struct {
	ops    map[string]Operation
	order  []string
	logger *zap.Logger
}

// New creates an empty dispatcher.
func New(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{ops: make(map[string]Operation), logger: logger}
}

// Register adds an operation. Names must be unique.
func (d *Dispatcher) Register(op Operation) error {
	if op.Name == "" || op.Handler == nil {
		return fmt.Errorf("operation needs a name and a handler")
	}
	if _, exists := d.ops[op.Name]; exists {
		return fmt.Errorf("operation %q already registered", op.Name)
	}
	seen := make(map[string]bool, len(op.Fields))
	for _, f := range op.Fields {
		if seen[f.Name] {
			return fmt.Errorf("operation %q: duplicate field %q", op.Name, f.Name)
		}
		seen[f.Name] = true
	}
	d.ops[op.Name] = op
	d.order = append(d.order, op.Name)
	return nil
}

// Operations lists the registered operations in registration order.
func (d *Dispatcher) Operations() []Operation {
	out := make([]Operation, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.ops[name])
	}
	return out
}

// Lookup returns the operation registered under name.
func (d *Dispatcher) Lookup(name string) (Operation, bool) {
	op, ok := d.ops[name]
	return op, ok
}

// Dispatch coerces raw against the operation's fields and runs its handler.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) (string, error) {
	op, ok := d.Lookup(name)
	if !ok {
		return "", &apperr.Error{Kind: apperr.KindUnknownOperation, Op: name, Msg: "unknown operation"}
	}

	callID := uuid.NewString()
	logger := d.logger.With(zap.String("operation", name), zap.String("call_id", callID))

	args, unknown, err := coerce(op.Fields, raw)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		logger.Debug("ignoring unknown arguments", zap.Strings("arguments", unknown))
	}
	if err != nil {
		err = apperr.WithOp(err, name)
		logger.Info("operation rejected", zap.Error(err))
		return "", err
	}

	start := time.Now()
	text, err := op.Handler(ctx, args)
	elapsed := time.Since(start)
	if err != nil {
		err = apperr.WithOp(err, name)
		logger.Info("operation failed",
			zap.Duration("elapsed", elapsed),
			zap.String("kind", string(apperr.KindOf(err))),
			zap.Error(err),
		)
		return "", err
	}
	logger.Info("operation completed", zap.Duration("elapsed", elapsed), zap.Int("bytes", len(text)))
	return text, nil
}
