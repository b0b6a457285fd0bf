package tagstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates invalid session configuration.
	ErrValidation = errors.New("validation error")

	// ErrMalformedBody indicates a tool tag closed but its body could not be
	// parsed into arguments.
	ErrMalformedBody = errors.New("malformed tool call body")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)

// ParseError describes a tool call whose body could not be parsed. It is
// passed to the handler registered with WithErrorHandler and carries the raw
// body so the failure can be diagnosed or surfaced back to the model.
type ParseError struct {
	ToolCallID string
	ToolName   string
	RawBody    string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tool %s (call %s): %v", e.ToolName, e.ToolCallID, e.Err)
}

// Unwrap returns the underlying extraction error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
