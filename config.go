package ttyline

import (
	"io"
	"os"
	"time"
)

// DefaultKeySeqTimeout is how long a lone Escape waits for the rest of an
// escape sequence before it counts as a key of its own.
const DefaultKeySeqTimeout = time.Millisecond

type Config struct {
	// prompt supports ANSI SGR sequences, so it can be coloured
	Prompt string

	// printed after the line when it is cancelled or hits end of input
	InterruptPrompt string
	EOFPrompt       string

	Stdin  io.Reader
	Stdout io.Writer

	EnableMask bool
	MaskRune   rune

	// edit even when Stdin is not a terminal; raw mode is only entered on
	// real terminals
	ForceUseInteractive bool

	// a lone Escape cancels the line like Ctrl-C does
	EscapeCancels bool
	KeySeqTimeout time.Duration

	// filter input runes (may be used to disable CtrlZ or for translating some keys to different actions)
	// -> output = new (translated) rune and true/false if continue with processing this one
	FuncFilterInputRune func(rune) (rune, bool)
}

func (c *Config) init() {
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.InterruptPrompt == "" {
		c.InterruptPrompt = "^C"
	}
	if c.KeySeqTimeout <= 0 {
		c.KeySeqTimeout = DefaultKeySeqTimeout
	}
	if c.EnableMask && c.MaskRune == 0 {
		c.MaskRune = '*'
	}
}
