package tty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/wader/ttyline/termios"
)

func newSizeController(dev *fakeDevice) *Controller {
	table := fakeTable{Stdin: 0, Stdout: 1, Stderr: 2}
	return NewController(table, WithDevice(dev), WithGuard(NewStdinGuard(func(func()) {})))
}

func TestConsoleSizeAnyFirstTerminalWins(t *testing.T) {
	dev := newFakeDevice()
	dev.sizes[1] = termios.Size{Cols: 80, Rows: 24}
	dev.sizes[2] = termios.Size{Cols: 132, Rows: 40}
	c := newSizeController(dev)

	s, err := c.ConsoleSizeAny()
	require.NoError(t, err)
	assert.Equal(t, ConsoleSize{Columns: 80, Rows: 24}, s)
	assert.Equal(t, "80x24", s.String())
}

func TestConsoleSizeAnyNoTerminal(t *testing.T) {
	c := newSizeController(newFakeDevice())

	_, err := c.ConsoleSizeAny()
	var ctlErr *ControlError
	require.ErrorAs(t, err, &ctlErr)
	assert.Equal(t, 2, ctlErr.Fd)
	assert.ErrorIs(t, err, unix.ENOTTY)
}

func TestConsoleSize(t *testing.T) {
	dev := newFakeDevice()
	dev.sizes[0] = termios.Size{Cols: 100, Rows: 30}
	c := newSizeController(dev)

	s, err := c.ConsoleSize(Stdin)
	require.NoError(t, err)
	assert.Equal(t, ConsoleSize{Columns: 100, Rows: 30}, s)

	_, err = c.ConsoleSize(ResourceID(42))
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestConsoleSizeInto(t *testing.T) {
	dev := newFakeDevice()
	dev.sizes[2] = termios.Size{Cols: 90, Rows: 20}
	c := newSizeController(dev)

	dst := make([]uint32, 2)
	require.NoError(t, c.ConsoleSizeInto(dst))
	assert.Equal(t, []uint32{90, 20}, dst)

	assert.Error(t, c.ConsoleSizeInto(make([]uint32, 1)))
}
