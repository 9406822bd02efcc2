package tty

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// signals whose default action ends the process
var exitSignals = []os.Signal{unix.SIGHUP, unix.SIGINT, unix.SIGQUIT, unix.SIGTERM}

type exitHooks struct {
	mu    sync.Mutex
	hooks []func()
	done  bool
}

func (h *exitHooks) add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, fn)
}

// run calls the hooks once, newest first. Later calls do nothing.
func (h *exitHooks) run() {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	h.done = true
	hooks := h.hooks
	h.hooks = nil
	h.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

// watch runs the hooks when one of sigs arrives, then delivers the signal
// again with its default action so the process still dies of it. Signals
// the process ignores are left alone. It returns the signals watched.
func (h *exitHooks) watch(sigs ...os.Signal) []os.Signal {
	var watched []os.Signal
	for _, sig := range sigs {
		if !signal.Ignored(sig) {
			watched = append(watched, sig)
		}
	}
	if len(watched) == 0 {
		return nil
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, watched...)
	go func() {
		sig := <-ch
		h.run()
		signal.Reset(watched...)
		if s, ok := sig.(syscall.Signal); ok {
			_ = unix.Kill(unix.Getpid(), s)
		}
	}()
	return watched
}

var (
	processHooks     = &exitHooks{}
	processWatchOnce sync.Once
)

// OnExit registers fn to run when the process exits through Exit or
// RunExitHooks, or through a terminating signal once WatchSignals has been
// called.
func OnExit(fn func()) {
	processHooks.add(fn)
}

// RunExitHooks runs the registered hooks. Only the first call has an effect.
func RunExitHooks() {
	processHooks.run()
}

// WatchSignals makes SIGHUP, SIGINT, SIGQUIT and SIGTERM run the exit hooks
// before they end the process. Programs that handle these signals
// themselves should not call it and run RunExitHooks on their own shutdown
// path instead. Calls after the first do nothing.
func WatchSignals() {
	processWatchOnce.Do(func() {
		processHooks.watch(exitSignals...)
	})
}

// Exit runs the exit hooks and terminates the process with code.
func Exit(code int) {
	RunExitHooks()
	os.Exit(code)
}
