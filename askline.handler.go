package askline

import (
	"context"
	"fmt"
	"io"
)

// Invalid describes one rejected input attempt, handed to the active
// ErrorHandler before the loop re-prompts.
type Invalid struct {
	// Input is the trimmed text that failed to parse.
	Input string

	// TypeName is the human-readable name of the expected type.
	TypeName string

	// Err is the underlying conversion error.
	Err error

	// Attempt is the 1-based attempt counter for this request.
	Attempt int
}

// ErrorHandler is the pluggable policy invoked exactly once per failed parse
// attempt. A custom handler fully replaces the default diagnostic for the
// request it is attached to; it does not accumulate or persist across
// requests.
type ErrorHandler func(ctx context.Context, inv Invalid)

// NewDefaultHandler returns the built-in diagnostic handler, writing one line
// per rejected attempt to w:
//
//	invalid entry "abc": expected int: ...
func NewDefaultHandler(w io.Writer) ErrorHandler {
	return func(_ context.Context, inv Invalid) {
		fmt.Fprintf(w, DefaultDiagnosticFormat, inv.Input, inv.TypeName, inv.Err)
	}
}
