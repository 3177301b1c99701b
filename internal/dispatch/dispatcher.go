// Package dispatch routes authenticated, validated invocations to their
// handlers and normalizes every outcome into a single Result shape. All
// failure paths terminate the same way, so the transport layer never
// special-cases error categories.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/creativeops/studio-mcp/internal/auth"
	"github.com/creativeops/studio-mcp/internal/registry"
	"github.com/creativeops/studio-mcp/pkg/types"
)

// DefaultTimeout bounds handler execution when no explicit timeout is set.
const DefaultTimeout = 30 * time.Second

// Dispatcher runs the per-invocation pipeline:
// authorize -> resolve -> validate -> execute -> respond.
// It is stateless between invocations; concurrent dispatches share only
// the read-only guard and registry.
type Dispatcher struct {
	guard    *auth.Guard
	registry *registry.Registry
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout bounds how long a handler may run before the invocation
// fails with a timeout result.
func WithTimeout(d time.Duration) Option {
	return func(dp *Dispatcher) {
		if d > 0 {
			dp.timeout = d
		}
	}
}

// WithLogger sets the structured logger used for per-invocation events.
func WithLogger(logger *slog.Logger) Option {
	return func(dp *Dispatcher) {
		if logger != nil {
			dp.logger = logger
		}
	}
}

// New creates a Dispatcher over the given guard and registry.
func New(guard *auth.Guard, reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		guard:    guard,
		registry: reg,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs one invocation to completion and always produces a Result.
// Per-invocation failures never escape as Go errors or panics.
func (d *Dispatcher) Dispatch(ctx context.Context, inv types.Invocation) types.Result {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	start := time.Now()
	result := d.run(ctx, inv)

	logger := d.logger.With(
		slog.String("invocation_id", inv.ID),
		slog.String("tool", inv.ToolName),
		slog.Duration("elapsed", time.Since(start)),
	)
	if result.OK() {
		logger.Info("invocation succeeded")
	} else {
		logger.Warn("invocation failed",
			slog.String("kind", string(result.Kind)),
			slog.String("message", result.Message))
	}
	return result
}

func (d *Dispatcher) run(ctx context.Context, inv types.Invocation) types.Result {
	// Received -> Authorized
	if err := d.guard.Authorize(inv.Token); err != nil {
		return types.Failure(types.ErrorKindUnauthorized, "invalid or missing bearer token")
	}

	// Authorized -> Resolved
	descriptor, handler, err := d.registry.Resolve(inv.ToolName)
	if err != nil {
		return types.Failure(types.ErrorKindUnknownTool, fmt.Sprintf("no tool named %q", inv.ToolName))
	}

	// Resolved -> Validated
	if msg, ok := validateArguments(descriptor, inv.Arguments); !ok {
		return types.Failure(types.ErrorKindInvalidArguments, msg)
	}

	// Validated -> Executed -> Responded
	return d.execute(ctx, handler, inv.Arguments)
}

// execute runs the handler under the configured timeout. The handler is an
// external collaborator and must be assumed capable of blocking forever or
// panicking; an abandoned handler goroutine is tolerated.
func (d *Dispatcher) execute(ctx context.Context, handler types.Handler, args map[string]any) types.Result {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	type outcome struct {
		payload any
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("handler panicked: %v", r)}
			}
		}()
		payload, err := handler(ctx, args)
		done <- outcome{payload: payload, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return types.Failure(types.ErrorKindHandlerError, out.err.Error())
		}
		return types.Success(out.payload)
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return types.Failure(types.ErrorKindTimeout,
				fmt.Sprintf("handler did not return within %s", d.timeout))
		}
		return types.Failure(types.ErrorKindTimeout, "invocation cancelled")
	}
}
