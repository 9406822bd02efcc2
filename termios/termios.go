//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package termios is the thin OS layer under ttyline: it reads and writes
// terminal control blocks, derives raw and password modes from them and
// queries window sizes. Nothing above this package touches ioctl directly.
package termios

import (
	"time"

	"golang.org/x/sys/unix"
)

// Mode is a snapshot of a terminal's control block. It is a plain value:
// copying it and comparing it with == are both bit-for-bit.
type Mode struct {
	termios unix.Termios
}

// FromTermios wraps an existing control block.
func FromTermios(t unix.Termios) Mode {
	return Mode{termios: t}
}

// Termios returns a copy of the wrapped control block.
func (m Mode) Termios() unix.Termios {
	return m.termios
}

// Echo reports whether input characters are echoed.
func (m Mode) Echo() bool {
	return m.termios.Lflag&unix.ECHO != 0
}

// Canonical reports whether input is line buffered.
func (m Mode) Canonical() bool {
	return m.termios.Lflag&unix.ICANON != 0
}

// SignalsEnabled reports whether INTR, QUIT and SUSP generate signals.
func (m Mode) SignalsEnabled() bool {
	return m.termios.Lflag&unix.ISIG != 0
}

// GetMode reads the current mode of the terminal behind fd.
func GetMode(fd int) (Mode, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return Mode{}, err
	}
	return Mode{termios: *t}, nil
}

// SetMode applies m to the terminal behind fd once all queued output has
// been transmitted.
func SetMode(fd int, m Mode) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermiosDrain, &m.termios)
}

// Size is a terminal size in character cells.
type Size struct {
	Cols uint16
	Rows uint16
}

// GetSize returns the window size of the terminal behind fd.
func GetSize(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{Cols: ws.Col, Rows: ws.Row}, nil
}

// WaitInput blocks until fd has input to read or timeout elapses, and
// reports which one happened. Interrupted polls are restarted.
func WaitInput(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ms := int(timeout / time.Millisecond)
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
