package tty

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wader/ttyline/termios"
)

func openPty(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestControllerPty(t *testing.T) {
	_, tty := openPty(t)
	fd := int(tty.Fd())
	before, err := termios.GetMode(fd)
	require.NoError(t, err)

	table := NewFileTable()
	id := table.Add(tty)
	hooks := &exitHooks{}
	c := NewController(table, WithGuard(NewStdinGuard(hooks.add)))

	require.NoError(t, c.SetRaw(id, true, false))
	raw, err := termios.GetMode(fd)
	require.NoError(t, err)
	assert.False(t, raw.Echo())
	assert.False(t, raw.Canonical())
	assert.False(t, raw.SignalsEnabled())

	require.NoError(t, c.SetRaw(id, true, true))
	cbreak, err := termios.GetMode(fd)
	require.NoError(t, err)
	assert.True(t, cbreak.SignalsEnabled())

	require.NoError(t, c.SetRaw(id, false, false))
	after, err := termios.GetMode(fd)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConsoleSizeOfPty(t *testing.T) {
	ptmx, tty := openPty(t)
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Cols: 132, Rows: 40}))

	s, err := ConsoleSizeOf(tty)
	require.NoError(t, err)
	assert.Equal(t, ConsoleSize{Columns: 132, Rows: 40}, s)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	_, err = ConsoleSizeOf(r)
	assert.Equal(t, KindControl, KindOf(err))
}
