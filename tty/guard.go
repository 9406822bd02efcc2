package tty

import (
	"sync"
	"sync/atomic"

	"github.com/wader/ttyline/termios"
)

// StdinGuard holds the mode stdin had before anything was made raw and puts
// it back when the process exits. The snapshot is taken at most once.
type StdinGuard struct {
	once     sync.Once
	snapshot atomic.Pointer[termios.Mode]
	register func(func())
}

// NewStdinGuard returns a guard that hands its restore hook to register.
func NewStdinGuard(register func(func())) *StdinGuard {
	return &StdinGuard{register: register}
}

var processGuard = NewStdinGuard(OnExit)

// Capture reads the mode of fd on the first call and arranges for it to be
// restored at exit. If the mode cannot be read nothing is registered and
// later calls do not retry.
func (g *StdinGuard) Capture(dev Device, fd int) {
	g.once.Do(func() {
		m, err := dev.GetMode(fd)
		if err != nil {
			return
		}
		g.snapshot.Store(&m)
		g.register(func() { g.restore(dev, fd) })
	})
}

func (g *StdinGuard) Snapshot() (termios.Mode, bool) {
	m := g.snapshot.Load()
	if m == nil {
		return termios.Mode{}, false
	}
	return *m, true
}

func (g *StdinGuard) restore(dev Device, fd int) {
	m, ok := g.Snapshot()
	if !ok {
		return
	}
	_ = dev.SetMode(fd, m)
}
