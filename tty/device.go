package tty

import "github.com/wader/ttyline/termios"

// Device is the terminal control surface the Controller works through.
type Device interface {
	GetMode(fd int) (termios.Mode, error)
	SetMode(fd int, m termios.Mode) error
	GetSize(fd int) (termios.Size, error)
}

// SystemDevice talks to real terminals.
type SystemDevice struct{}

func (SystemDevice) GetMode(fd int) (termios.Mode, error) { return termios.GetMode(fd) }

func (SystemDevice) SetMode(fd int, m termios.Mode) error { return termios.SetMode(fd, m) }

func (SystemDevice) GetSize(fd int) (termios.Size, error) { return termios.GetSize(fd) }
