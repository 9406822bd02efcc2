package ttyline

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// SuspendMe stops the current process as if the terminal had delivered
// SIGTSTP and returns once it is continued. Raw mode has ISIG off, so
// Ctrl-Z arrives as a byte instead. It returns at once if SIGTSTP is
// ignored.
func SuspendMe() {
	suspendUntilContinued(func() error {
		return unix.Kill(unix.Getpid(), unix.SIGTSTP)
	})
}

// suspendUntilContinued calls stop and waits for SIGCONT. SIGCONT is
// watched before stop so that a fast resume is not missed.
func suspendUntilContinued(stop func() error) {
	if signal.Ignored(unix.SIGTSTP) {
		return
	}
	cont := make(chan os.Signal, 1)
	signal.Notify(cont, unix.SIGCONT)
	defer signal.Stop(cont)

	if err := stop(); err != nil {
		return
	}
	<-cont
}
