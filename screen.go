package ttyline

import (
	"os"

	"golang.org/x/term"
)

// screenWidth is the column count of the terminal behind Stdout, or 0 when
// Stdout is not a terminal.
func (i *Instance) screenWidth() int {
	f, ok := i.cfg.Stdout.(*os.File)
	if !ok {
		return 0
	}
	return GetScreenWidth(int(f.Fd()))
}

// GetScreenWidth returns the width of the terminal on fd, or 0 if fd is not
// a terminal.
func GetScreenWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
