package ttyline

import (
	"io"
	"os"
	"testing"
	"time"

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

// rawPty returns a pty already in raw mode, so input written before the
// editor starts reaches it byte for byte.
func rawPty(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty := openPty(t)
	fd := int(tty.Fd())
	cooked, err := termios.GetMode(fd)
	require.NoError(t, err)
	require.NoError(t, termios.SetMode(fd, termios.Raw(cooked, false)))
	t.Cleanup(func() { _ = termios.SetMode(fd, cooked) })
	return ptmx, tty
}

func TestReadLineTerminal(t *testing.T) {
	ptmx, tty := rawPty(t)
	fd := int(tty.Fd())
	before, err := termios.GetMode(fd)
	require.NoError(t, err)

	rl, err := New(&Config{
		Prompt:        "Name: ",
		Stdin:         tty,
		Stdout:        io.Discard,
		KeySeqTimeout: 200 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.True(t, rl.Interactive())

	_, err = ptmx.Write([]byte("\x15Alice\x1b[DX\r"))
	require.NoError(t, err)

	line, err := rl.ReadLineWithDefault("Bob")
	require.NoError(t, err)
	assert.Equal(t, "AlicXe", line)

	after, err := termios.GetMode(fd)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReadLineTerminalEscapeTimeout(t *testing.T) {
	ptmx, tty := rawPty(t)

	rl, err := New(&Config{
		Stdin:         tty,
		Stdout:        io.Discard,
		EscapeCancels: true,
	})
	require.NoError(t, err)

	_, err = ptmx.Write([]byte("\x1b"))
	require.NoError(t, err)

	_, err = rl.ReadLineWithDefault("Bob")
	assert.Equal(t, ErrInterrupted, err)
}

func TestReadPassword(t *testing.T) {
	ptmx, tty := openPty(t)
	fd := int(tty.Fd())
	before, err := termios.GetMode(fd)
	require.NoError(t, err)

	_, err = ptmx.Write([]byte("hunter2\n"))
	require.NoError(t, err)

	pw, err := ReadPassword(fd)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)

	after, err := termios.GetMode(fd)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReadPasswordNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = ReadPassword(int(r.Fd()))
	var editorErr *EditorError
	require.ErrorAs(t, err, &editorErr)
	assert.Equal(t, "get terminal mode", editorErr.Op)
}
