package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/aretw0/homey-mcp/pkg/ports"
)

// NotConnectedMessage is reported for every invocation while the Session is unset.
const NotConnectedMessage = "Not connected to Homey. Set HOMEY_TOKEN (and HOMEY_ADDRESS for a local connection) and restart the bridge."

// InvocationEvent describes one finished invocation.
type InvocationEvent struct {
	Operation string
	Args      Args
	Duration  time.Duration
	IsError   bool
	Message   string
}

// Hooks are optional observability callbacks.
type Hooks struct {
	OnInvoke   func(ctx context.Context, operation string, args Args)
	OnComplete func(ctx context.Context, e InvocationEvent)
}

// Dispatcher routes invocations to catalog handlers.
// It is safe for concurrent use; the only shared state is the read-only
// Catalog and the borrowed Session.
type Dispatcher struct {
	catalog  *Catalog
	session  *ports.Session
	validate bool
	hooks    Hooks
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(d *Dispatcher) {
		d.hooks = h
	}
}

// WithoutValidation skips the schema check and hands raw arguments to handlers.
func WithoutValidation() Option {
	return func(d *Dispatcher) {
		d.validate = false
	}
}

// NewDispatcher creates a Dispatcher over a catalog and session.
func NewDispatcher(catalog *Catalog, session *ports.Session, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog:  catalog,
		session:  session,
		validate: true,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog served by the dispatcher.
func (d *Dispatcher) Catalog() *Catalog {
	return d.catalog
}

// Invoke runs one operation and always returns exactly one Result.
// Handler errors and panics are converted to failure results here and
// nowhere else. Nothing is retried.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (res Result) {
	start := time.Now()
	if args == nil {
		args = map[string]any{}
	}
	if d.hooks.OnInvoke != nil {
		d.hooks.OnInvoke(ctx, name, args)
	}
	defer func() {
		d.complete(ctx, name, args, res, time.Since(start))
	}()

	backend := d.session.Backend()
	if backend == nil {
		return Failure(NotConnectedMessage)
	}

	op, ok := d.catalog.Lookup(name)
	if !ok {
		return Failure("Unknown operation: " + name)
	}

	input := Args(args)
	if d.validate {
		if err := op.Schema.Validate(args); err != nil {
			return Failure(err.Error())
		}
		clean, err := SanitizeArgs(args)
		if err != nil {
			return Failure(err.Error())
		}
		input = clean
	}

	content, err := d.call(ctx, op, backend, input)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(content...)
}

func (d *Dispatcher) call(ctx context.Context, op Operation, backend ports.Backend, args Args) (content []Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("operation panicked", "operation", op.Name, "panic", r)
			err = fmt.Errorf("%v", r)
		}
	}()
	return op.Handler(ctx, backend, args)
}

func (d *Dispatcher) complete(ctx context.Context, name string, args Args, res Result, elapsed time.Duration) {
	if res.IsError {
		d.logger.Warn("operation failed", "operation", name, "duration", elapsed, "error", res.Message())
	} else {
		d.logger.Debug("operation completed", "operation", name, "duration", elapsed)
	}
	if d.hooks.OnComplete != nil {
		d.hooks.OnComplete(ctx, InvocationEvent{
			Operation: name,
			Args:      args,
			Duration:  elapsed,
			IsError:   res.IsError,
			Message:   res.Message(),
		})
	}
}
