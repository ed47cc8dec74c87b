package tool

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/instabids/mcp-hub/internal/infra/logging"
)

// Request is one caller-supplied invocation: a tool name and an untyped
// argument bag. Transient; built per incoming request.
type Request struct {
	Tool string
	Args Args
}

// Result is the uniform envelope returned for every dispatch.
// Status is "success" or "error"; exactly one of Result/Error is set.
type Result struct {
	Status string `json:"status"`
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StatusSuccess and StatusError are the two envelope states.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UsageRecorder receives per-dispatch telemetry. Implementations must be
// best-effort: a recording failure can never affect the primary response.
type UsageRecorder interface {
	Record(tool string, outcome Kind, elapsed time.Duration)
}

// Dispatcher resolves tool names against a registry, binds arguments and
// invokes handlers, isolating every fault inside the error envelope.
type Dispatcher struct {
	reg    *Registry
	usage  UsageRecorder
	logger *slog.Logger
}

// NewDispatcher builds a dispatcher. usage may be nil to disable telemetry.
func NewDispatcher(reg *Registry, usage UsageRecorder, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{reg: reg, usage: usage, logger: logger}
}

// Dispatch invokes the named tool exactly once and returns the envelope.
// Every failure mode (unknown name, bad arguments, handler error, handler
// panic) produces a well-formed error envelope; nothing propagates.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	start := time.Now()

	if req.Tool == "" {
		// Name never extracted; mirror that in the envelope.
		return d.fail(ctx, "unknown", Validationf("missing tool name"), start)
	}

	desc, err := d.reg.Resolve(req.Tool)
	if err != nil {
		return d.fail(ctx, req.Tool, UnknownToolError(req.Tool, d.reg.Names()), start)
	}

	bound, bindErr := BindArgs(desc, req.Args)
	if bindErr != nil {
		return d.fail(ctx, req.Tool, bindErr, start)
	}

	value, invokeErr := d.invoke(ctx, desc, bound)
	if invokeErr != nil {
		return d.fail(ctx, req.Tool, Classify(invokeErr), start)
	}

	d.record(req.Tool, "", time.Since(start))
	return Result{Status: StatusSuccess, Tool: req.Tool, Result: value}
}

// invoke runs the handler with panic isolation. A panicking handler must not
// take down the listener or leak a stack trace to the caller.
func (d *Dispatcher) invoke(ctx context.Context, desc *Descriptor, args Args) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = InternalError(fmt.Errorf("tool %q panicked: %v", desc.Name, r))
		}
	}()
	return desc.Handler(ctx, args)
}

// fail logs the classified failure and returns the error envelope.
// The full detail stays in the log; the caller sees the classified message.
func (d *Dispatcher) fail(ctx context.Context, toolName string, terr *Error, start time.Time) Result {
	d.logger.ErrorContext(ctx, "dispatch failed",
		logging.ToolKey, toolName,
		logging.ErrorKindKey, string(terr.Kind),
		"error", terr.Message,
	)
	d.record(toolName, terr.Kind, time.Since(start))
	return Result{Status: StatusError, Tool: toolName, Error: terr.Message}
}

// record forwards telemetry; empty kind means success.
func (d *Dispatcher) record(toolName string, kind Kind, elapsed time.Duration) {
	if d.usage == nil {
		return
	}
	outcome := kind
	if outcome == "" {
		outcome = Kind(StatusSuccess)
	}
	d.usage.Record(toolName, outcome, elapsed)
}
