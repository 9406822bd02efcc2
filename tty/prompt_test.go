package tty

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wader/ttyline"
)

type countingPrompter struct {
	Prompter
	interrupts int
}

func newPrompter(input string, interactive bool) *countingPrompter {
	p := &countingPrompter{}
	p.Stdin = strings.NewReader(input)
	p.Stdout = io.Discard
	p.ForceInteractive = interactive
	p.Interrupt = func() { p.interrupts++ }
	return p
}

func TestReadLinePrompt(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		interactive bool
		line        string
		ok          bool
		interrupts  int
	}{
		{name: "piped line", input: "Alice\n", line: "Alice", ok: true},
		{name: "piped end of input", input: ""},
		{name: "accept default", input: "\r", interactive: true, line: "Bob", ok: true},
		{name: "replace default", input: "\x15Alice\r", interactive: true, line: "Alice", ok: true},
		{name: "ctrl c", input: "\x03", interactive: true, interrupts: 1},
		{name: "escape", input: "\x1b", interactive: true, interrupts: 1},
		{name: "ctrl d", input: "\x15\x04", interactive: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPrompter(tc.input, tc.interactive)
			line, ok, err := p.ReadLinePrompt("Name: ", "Bob")
			require.NoError(t, err)
			assert.Equal(t, tc.line, line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.interrupts, p.interrupts)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadLinePromptError(t *testing.T) {
	p := newPrompter("", false)
	p.Stdin = failingReader{}

	_, ok, err := p.ReadLinePrompt("Name: ", "Bob")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, KindEditor, KindOf(err))
	assert.Equal(t, 0, p.interrupts)
}

func TestReadLinePromptIgnoreEscape(t *testing.T) {
	p := newPrompter("\x1b\x1bAlice\r", true)
	p.IgnoreEscape = true

	line, ok, err := p.ReadLinePrompt("Name: ", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, p.interrupts)
	assert.Equal(t, "Alice", line)
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("hangup")
}

func TestReadLinePromptWriteError(t *testing.T) {
	p := newPrompter("Alice\r", true)
	w := &failingWriter{}
	p.Stdout = w

	line, ok, err := p.ReadLinePrompt("Name: ", "Bob")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, line)
	assert.Equal(t, KindEditor, KindOf(err))
	var editorErr *ttyline.EditorError
	require.ErrorAs(t, err, &editorErr)
	assert.Equal(t, "write", editorErr.Op)
	// stops at the first failed draw instead of reading the whole line
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, 0, p.interrupts)
}
