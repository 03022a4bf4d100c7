package main

import (
	"fmt"
	"strconv"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// parsePosition converts a 1-based position argument to a palette index.
// Range checks are left to the palette so out-of-range positions stay no-ops.
func parsePosition(operation, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, newCommandError(operation, fmt.Sprintf("reading position %q", arg), err, "Pass the color's position as shown by 'swatch show', starting at 1.")
	}
	return n - 1, nil
}
