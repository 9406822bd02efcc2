package tty

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wader/ttyline/termios"
)

func TestFileTable(t *testing.T) {
	table := NewFileTable()

	fd, err := table.Fd(Stdout)
	require.NoError(t, err)
	assert.Equal(t, int(os.Stdout.Fd()), fd)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	id := table.Add(r)
	assert.Equal(t, Stderr+1, id)
	fd, err = table.Fd(id)
	require.NoError(t, err)
	assert.Equal(t, int(r.Fd()), fd)

	f, ok := table.Remove(id)
	require.True(t, ok)
	assert.Same(t, r, f)
	_, err = table.Fd(id)
	assert.ErrorIs(t, err, ErrResourceNotFound)

	assert.Equal(t, id+1, table.Add(w))
}

func TestModeStore(t *testing.T) {
	s := NewModeStore()
	_, ok := s.Get(Stdin)
	assert.False(t, ok)

	m := cookedMode()
	s.Set(Stdin, m)
	got, ok := s.Get(Stdin)
	require.True(t, ok)
	assert.Equal(t, m, got)
	assert.Equal(t, 1, s.Len())

	got, ok = s.Take(Stdin)
	require.True(t, ok)
	assert.Equal(t, m, got)
	_, ok = s.Take(Stdin)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	s.Set(Stdout, termios.Raw(m, false))
	s.Set(Stdout, m)
	got, _ = s.Get(Stdout)
	assert.Equal(t, m, got)
}
