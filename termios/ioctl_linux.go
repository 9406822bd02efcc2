package termios

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSW waits for pending output to drain before applying.
	ioctlWriteTermiosDrain = unix.TCSETSW
)
