package docflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for common document rendering failure conditions.
var (
	ErrInvalidGeometry = errors.New("docflow: invalid page geometry")
	ErrInvalidUnit     = errors.New("docflow: unknown measurement unit")
	ErrInvalidDocument = errors.New("docflow: document failed validation")
)

// RenderError represents an error that occurred during a specific rendering
// stage. It wraps an underlying error and includes the stage name for context.
type RenderError struct {
	Op  string // stage name, e.g. "parse", "layout", "toc"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docflow.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docflow.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError creates a new RenderError wrapping the given error with
// stage context.
func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
