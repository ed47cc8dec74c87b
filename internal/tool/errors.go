package tool

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a dispatch failure. The dispatch layer reports classified
// failures verbatim and unexpected faults generically, so adapters must wrap
// everything they return in one of these.
type Kind string

const (
	// KindValidation: missing/malformed tool name or arguments; caller-correctable.
	KindValidation Kind = "validation"
	// KindUnknownTool: name not in the registry.
	KindUnknownTool Kind = "unknown_tool"
	// KindUpstream: remote provider returned 4xx/5xx.
	KindUpstream Kind = "upstream"
	// KindTransport: timeout, DNS failure, connection refused; no status code available.
	KindTransport Kind = "transport"
	// KindInternal: anything unexpected; caught at the dispatch boundary, never propagated.
	KindInternal Kind = "internal"
)

var (
	ErrDuplicateTool = errors.New("tool already registered")
	ErrUnknownTool   = errors.New("tool not found")
)

// Error is a classified dispatch failure.
type Error struct {
	Kind    Kind
	Message string

	// Status and Body are set for upstream errors only.
	Status int
	Body   string

	cause error
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream && e.Status != 0 {
		return fmt.Sprintf("%s (upstream status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validationf builds a validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// UnknownToolError builds an unknown-tool error listing the valid names, which
// lets an LLM caller self-correct from the message alone.
func UnknownToolError(name string, known []string) *Error {
	msg := fmt.Sprintf("tool %q not found", name)
	if len(known) > 0 {
		msg += "; available tools: " + strings.Join(known, ", ")
	}
	return &Error{Kind: KindUnknownTool, Message: msg, cause: ErrUnknownTool}
}

// UpstreamError builds an error for a 4xx/5xx response from the remote API.
func UpstreamError(status int, body string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("upstream request failed: %s", strings.TrimSpace(body)),
		Status:  status,
		Body:    body,
	}
}

// TransportError wraps a network-level failure (timeout, DNS, refused).
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: "upstream unreachable: " + err.Error(), cause: err}
}

// InternalError wraps an unexpected fault.
func InternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error: " + err.Error(), cause: err}
}

// Classify returns err as a classified *Error, wrapping unclassified errors
// as internal so nothing unexpected ever crosses the dispatch boundary raw.
func Classify(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return InternalError(err)
}
