package ttyline

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted is returned when the user cancels the line, with
	// Ctrl-C or, if bound, a lone Escape. It is an outcome, not a failure.
	ErrInterrupted = errors.New("interrupted")
)

// EditorError is an I/O failure while reading or drawing a line.
type EditorError struct {
	Op  string
	Err error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("line editor: %s: %v", e.Op, e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}
