package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wader/ttyline/tty"
)

func main() {
	// a signal must not leave stdin raw
	tty.WatchSignals()

	err := newRootCmd(&app{}).Execute()
	var exitErr exitError
	switch {
	case err == nil:
		tty.Exit(0)
	case errors.As(err, &exitErr):
		tty.Exit(exitErr.code)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		tty.Exit(1)
	}
}
