package tty

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/wader/ttyline/termios"
)

func cookedMode() termios.Mode {
	return termios.FromTermios(unix.Termios{
		Iflag: unix.BRKINT | unix.ICRNL | unix.IXON,
		Oflag: unix.OPOST,
		Cflag: unix.CS7 | unix.CREAD,
		Lflag: unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN,
	})
}

type fakeTable map[ResourceID]int

func (t fakeTable) Fd(id ResourceID) (int, error) {
	fd, ok := t[id]
	if !ok {
		return -1, &ResourceError{ID: id}
	}
	return fd, nil
}

type fakeDevice struct {
	mu       sync.Mutex
	modes    map[int]termios.Mode
	sizes    map[int]termios.Size
	setCalls int
	failGet  error
	failSet  error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{modes: map[int]termios.Mode{}, sizes: map[int]termios.Size{}}
}

func (d *fakeDevice) GetMode(fd int) (termios.Mode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failGet != nil {
		return termios.Mode{}, d.failGet
	}
	m, ok := d.modes[fd]
	if !ok {
		return termios.Mode{}, unix.ENOTTY
	}
	return m, nil
}

func (d *fakeDevice) SetMode(fd int, m termios.Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setCalls++
	if d.failSet != nil {
		return d.failSet
	}
	if _, ok := d.modes[fd]; !ok {
		return unix.ENOTTY
	}
	d.modes[fd] = m
	return nil
}

func (d *fakeDevice) GetSize(fd int) (termios.Size, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sizes[fd]
	if !ok {
		return termios.Size{}, unix.ENOTTY
	}
	return s, nil
}

func (d *fakeDevice) mode(fd int) termios.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modes[fd]
}

func (d *fakeDevice) setMode(fd int, m termios.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modes[fd] = m
}
