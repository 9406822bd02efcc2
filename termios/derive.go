//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package termios

import "golang.org/x/sys/unix"

// Raw derives a raw mode from base: no input translation, no echo, no
// line buffering and reads that block until a single byte is available.
// With allowSignals the INTR/QUIT/SUSP characters keep generating signals,
// which is what is usually called cbreak mode. base is left untouched.
func Raw(base Mode, allowSignals bool) Mode {
	t := base.termios
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	if !allowSignals {
		t.Lflag &^= unix.ISIG
	}
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return Mode{termios: t}
}

// Password derives a mode for reading secrets: canonical line input with
// echo and signal generation turned off.
func Password(base Mode) Mode {
	t := base.termios
	t.Iflag &^= unix.IGNBRK | unix.BRKINT
	t.Iflag |= unix.ICRNL
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ISIG
	t.Lflag |= unix.ICANON
	return Mode{termios: t}
}
