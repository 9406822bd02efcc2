package tty

import (
	"errors"
	"fmt"

	"github.com/wader/ttyline"
	"golang.org/x/sys/unix"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceError reports an id that the ResourceTable could not resolve.
type ResourceError struct {
	ID ResourceID
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("tty: resource %d: %v", e.ID, ErrResourceNotFound)
}

func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// ControlError is a failed terminal control request on Fd.
type ControlError struct {
	Op  string
	Fd  int
	Err error
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("tty: %s on fd %d: %v", e.Op, e.Fd, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// Errno returns the OS error number behind the failure, if there is one.
func (e *ControlError) Errno() (unix.Errno, bool) {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

// Kind classifies errors returned by this package and the line editor.
type Kind int

const (
	KindOther Kind = iota
	KindResource
	KindControl
	KindEditor
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindControl:
		return "control"
	case KindEditor:
		return "editor"
	}
	return "other"
}

func KindOf(err error) Kind {
	var (
		controlErr *ControlError
		editorErr  *ttyline.EditorError
	)
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return KindResource
	case errors.As(err, &controlErr):
		return KindControl
	case errors.As(err, &editorErr):
		return KindEditor
	}
	return KindOther
}
