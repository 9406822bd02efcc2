package tty

import (
	"errors"
	"io"
	"time"

	"golang.org/x/sys/unix"

	"github.com/wader/ttyline"
)

// PromptKeySeqTimeout is how long a prompt waits after Escape before
// treating it as a cancel.
const PromptKeySeqTimeout = time.Millisecond

// Prompter reads single prompted lines. A cancelled line is reported by
// raising an interrupt rather than as an error. The zero value reads from
// the process stdin and raises SIGINT.
type Prompter struct {
	Stdin  io.Reader
	Stdout io.Writer

	// edit in place even when Stdin is not a terminal
	ForceInteractive bool
	KeySeqTimeout    time.Duration
	// InterruptPrompt and EOFPrompt are passed through to the editor
	InterruptPrompt string
	EOFPrompt       string
	// shown instead of each typed rune when set
	MaskRune rune
	// a lone Escape is ignored instead of cancelling
	IgnoreEscape bool

	// called once per cancelled line, RaiseInterrupt if nil
	Interrupt func()
}

// ReadLinePrompt shows prompt with def pre-filled and returns the submitted
// line with ok set. Cancelling calls the interrupt hook and returns with ok
// unset, as does the end of input. Only I/O failures are errors.
func (p *Prompter) ReadLinePrompt(prompt, def string) (line string, ok bool, err error) {
	timeout := p.KeySeqTimeout
	if timeout <= 0 {
		timeout = PromptKeySeqTimeout
	}
	rl, err := ttyline.New(&ttyline.Config{
		Prompt:              prompt,
		InterruptPrompt:     p.InterruptPrompt,
		EOFPrompt:           p.EOFPrompt,
		Stdin:               p.Stdin,
		Stdout:              p.Stdout,
		ForceUseInteractive: p.ForceInteractive,
		EnableMask:          p.MaskRune != 0,
		MaskRune:            p.MaskRune,
		EscapeCancels:       !p.IgnoreEscape,
		KeySeqTimeout:       timeout,
	})
	if err != nil {
		return "", false, err
	}

	line, err = rl.ReadLineWithDefault(def)
	switch {
	case err == nil:
		return line, true, nil
	case errors.Is(err, ttyline.ErrInterrupted):
		interrupt := p.Interrupt
		if interrupt == nil {
			interrupt = RaiseInterrupt
		}
		interrupt()
		return "", false, nil
	case errors.Is(err, io.EOF):
		return "", false, nil
	}
	return "", false, err
}

// ReadLinePrompt reads a line from the process stdin with a zero Prompter.
func ReadLinePrompt(prompt, def string) (string, bool, error) {
	return (&Prompter{}).ReadLinePrompt(prompt, def)
}

// RaiseInterrupt sends SIGINT to the current process.
func RaiseInterrupt() {
	_ = unix.Kill(unix.Getpid(), unix.SIGINT)
}
