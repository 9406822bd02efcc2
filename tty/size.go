package tty

import (
	"fmt"
	"os"
)

// ConsoleSize is a terminal size in character cells.
type ConsoleSize struct {
	Columns uint32
	Rows    uint32
}

func (s ConsoleSize) String() string {
	return fmt.Sprintf("%dx%d", s.Columns, s.Rows)
}

// ConsoleSizeOf returns the window size of the terminal behind f.
func ConsoleSizeOf(f *os.File) (ConsoleSize, error) {
	fd := int(f.Fd())
	return consoleSize(SystemDevice{}, fd)
}

func consoleSize(dev Device, fd int) (ConsoleSize, error) {
	s, err := dev.GetSize(fd)
	if err != nil {
		return ConsoleSize{}, &ControlError{Op: "get window size", Fd: fd, Err: err}
	}
	return ConsoleSize{Columns: uint32(s.Cols), Rows: uint32(s.Rows)}, nil
}

func (c *Controller) ConsoleSize(id ResourceID) (ConsoleSize, error) {
	fd, err := c.table.Fd(id)
	if err != nil {
		return ConsoleSize{}, err
	}
	return consoleSize(c.dev, fd)
}

// ConsoleSizeAny tries stdin, stdout and stderr in that order and returns
// the first size found. If none is a terminal the last error is returned.
func (c *Controller) ConsoleSizeAny() (ConsoleSize, error) {
	var lastErr error
	for _, id := range []ResourceID{Stdin, Stdout, Stderr} {
		s, err := c.ConsoleSize(id)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return ConsoleSize{}, lastErr
}

// ConsoleSizeInto stores the ConsoleSizeAny result in dst as columns, rows.
func (c *Controller) ConsoleSizeInto(dst []uint32) error {
	if len(dst) < 2 {
		return fmt.Errorf("tty: console size needs 2 elements, got %d", len(dst))
	}
	s, err := c.ConsoleSizeAny()
	if err != nil {
		return err
	}
	dst[0], dst[1] = s.Columns, s.Rows
	return nil
}
