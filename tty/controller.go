// Package tty switches terminals in and out of raw mode, restores stdin when
// the process exits, reports console sizes and reads prompted lines.
package tty

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/wader/ttyline/termios"
)

// Controller switches resources between raw mode and the mode they had
// before. The first SetRaw also snapshots stdin through the StdinGuard.
type Controller struct {
	mu    sync.Mutex
	table ResourceTable
	dev   Device
	store *ModeStore
	guard *StdinGuard
	log   zerolog.Logger
}

type Option func(*Controller)

func WithDevice(dev Device) Option {
	return func(c *Controller) { c.dev = dev }
}

func WithGuard(g *StdinGuard) Option {
	return func(c *Controller) { c.guard = g }
}

func WithStore(s *ModeStore) Option {
	return func(c *Controller) { c.store = s }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController returns a Controller resolving ids through table. Without
// options it drives real terminals and uses the process-wide stdin guard.
func NewController(table ResourceTable, opts ...Option) *Controller {
	c := &Controller{
		table: table,
		dev:   SystemDevice{},
		guard: processGuard,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewModeStore()
	}
	return c
}

func (c *Controller) Store() *ModeStore {
	return c.store
}

// SetRaw puts id in raw mode, or cbreak mode when allowSignals is set, or
// with raw false restores the mode it had before. Enabling twice keeps the
// first baseline; disabling a resource that is not raw does nothing.
func (c *Controller) SetRaw(id ResourceID, raw, allowSignals bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fd, err := c.table.Fd(id)
	if err != nil {
		return err
	}
	if stdinFd, err := c.table.Fd(Stdin); err == nil {
		c.guard.Capture(c.dev, stdinFd)
	}

	log := c.log.With().Uint32("rid", uint32(id)).Int("fd", fd).Logger()

	if !raw {
		m, ok := c.store.Take(id)
		if !ok {
			return nil
		}
		if err := c.dev.SetMode(fd, m); err != nil {
			// keep it so a later call can retry
			c.store.Set(id, m)
			return &ControlError{Op: "restore mode", Fd: fd, Err: err}
		}
		log.Debug().Msg("mode restored")
		return nil
	}

	base, stored := c.store.Get(id)
	if !stored {
		base, err = c.dev.GetMode(fd)
		if err != nil {
			return &ControlError{Op: "get mode", Fd: fd, Err: err}
		}
	}
	if err := c.dev.SetMode(fd, termios.Raw(base, allowSignals)); err != nil {
		return &ControlError{Op: "set raw mode", Fd: fd, Err: err}
	}
	if !stored {
		c.store.Set(id, base)
	}
	log.Debug().Bool("allow_signals", allowSignals).Msg("raw mode enabled")
	return nil
}
