package ttyline

import (
	"bytes"
	"io"

	"github.com/wader/ttyline/termios"
	"golang.org/x/sys/unix"
)

// ReadPassword reads a line of input from a terminal without local echo. This
// is commonly used for inputting passwords and other sensitive data. The slice
// returned does not include the \n. The terminal mode is restored before
// returning.
func ReadPassword(fd int) (_ []byte, err error) {
	base, err := termios.GetMode(fd)
	if err != nil {
		return nil, &EditorError{Op: "get terminal mode", Err: err}
	}
	if err := termios.SetMode(fd, termios.Password(base)); err != nil {
		return nil, &EditorError{Op: "enter password mode", Err: err}
	}
	defer func() {
		if rerr := termios.SetMode(fd, base); rerr != nil && err == nil {
			err = &EditorError{Op: "restore terminal mode", Err: rerr}
		}
	}()

	// canonical mode hands over at most one line per read
	var buf [16]byte
	var ret []byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, &EditorError{Op: "read", Err: err}
		}
		if n == 0 {
			if len(ret) == 0 {
				return nil, io.EOF
			}
			break
		}
		ret = append(ret, buf[:n]...)
		if buf[n-1] == '\n' || n < len(buf) {
			break
		}
	}
	ret = bytes.TrimSuffix(ret, []byte("\n"))
	ret = bytes.TrimSuffix(ret, []byte("\r"))
	return ret, nil
}
