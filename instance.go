package ttyline

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/wader/ttyline/runeutil"
	"github.com/wader/ttyline/termios"
	"golang.org/x/term"
)

// Instance reads single lines. It keeps no history and no state between
// calls other than its configuration.
type Instance struct {
	cfg  *Config
	keys *keyReader

	// terminal behind cfg.Stdin, -1 if there is none
	fd          int
	interactive bool

	// mode found on fd when the current line started
	base termios.Mode
}

// New returns an Instance for cfg. cfg is copied; later changes to it have
// no effect.
func New(cfg *Config) (*Instance, error) {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	c.init()

	i := &Instance{cfg: &c, fd: -1}
	if f, ok := c.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		i.fd = int(f.Fd())
	}
	i.interactive = i.fd >= 0 || c.ForceUseInteractive
	i.keys = newKeyReader(c.Stdin, i.fd, c.KeySeqTimeout)
	return i, nil
}

func (i *Instance) SetPrompt(prompt string) {
	i.cfg.Prompt = prompt
}

// Interactive reports whether lines are edited in place or read as plain
// text.
func (i *Instance) Interactive() bool {
	return i.interactive
}

func (i *Instance) ReadLine() (string, error) {
	return i.ReadLineWithDefault("")
}

// ReadLineWithDefault reads a line with def already typed and the cursor
// after it. A cancelled line returns ErrInterrupted and end of input
// returns io.EOF. When the input is not interactive def is ignored.
func (i *Instance) ReadLineWithDefault(def string) (line string, err error) {
	if !i.interactive {
		return i.readPlain()
	}

	if i.fd >= 0 {
		base, merr := termios.GetMode(i.fd)
		if merr != nil {
			return "", &EditorError{Op: "get terminal mode", Err: merr}
		}
		if merr := termios.SetMode(i.fd, termios.Raw(base, false)); merr != nil {
			return "", &EditorError{Op: "enter raw mode", Err: merr}
		}
		i.base = base
		defer func() {
			if rerr := termios.SetMode(i.fd, base); rerr != nil && err == nil {
				line, err = "", &EditorError{Op: "restore terminal mode", Err: rerr}
			}
		}()
	}

	var mask rune
	if i.cfg.EnableMask {
		mask = i.cfg.MaskRune
	}
	buf := runeutil.NewRuneBuffer(i.cfg.Stdout, i.cfg.Prompt, mask, i.screenWidth())
	buf.SetRunes([]rune(def))
	return i.edit(buf)
}

// edit runs the key loop. Failing to draw ends the line with a write error,
// whatever the outcome of the keys was.
func (i *Instance) edit(buf *runeutil.RuneBuffer) (string, error) {
	line, err := i.editKeys(buf)
	if werr := buf.Err(); werr != nil {
		return "", &EditorError{Op: "write", Err: werr}
	}
	return line, err
}

func (i *Instance) editKeys(buf *runeutil.RuneBuffer) (string, error) {
	for {
		if buf.Err() != nil {
			return "", nil
		}
		k, err := i.keys.readKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				buf.FinishWith(i.cfg.EOFPrompt)
				return "", io.EOF
			}
			return "", &EditorError{Op: "read", Err: err}
		}

		if k.code == keyRune && !k.meta && i.cfg.FuncFilterInputRune != nil {
			r, ok := i.cfg.FuncFilterInputRune(k.r)
			if !ok {
				continue
			}
			k.r = r
		}

		switch k.code {
		case keyEscape:
			if i.cfg.EscapeCancels {
				buf.FinishWith(i.cfg.InterruptPrompt)
				return "", ErrInterrupted
			}
		case keyLeft:
			buf.MoveBackward()
		case keyRight:
			buf.MoveForward()
		case keyHome:
			buf.MoveToLineStart()
		case keyEnd:
			buf.MoveToLineEnd()
		case keyDelete:
			buf.Delete()
		case keyWordLeft:
			buf.MoveToPrevWord()
		case keyWordRight:
			buf.MoveToNextWord()
		case keyRune:
			if k.meta {
				i.meta(buf, k.r)
				continue
			}
			switch k.r {
			case CharEnter, CharCtrlJ:
				buf.Finish()
				return buf.String(), nil
			case CharInterrupt:
				buf.FinishWith(i.cfg.InterruptPrompt)
				return "", ErrInterrupted
			case CharDelete:
				if buf.Len() == 0 {
					buf.FinishWith(i.cfg.EOFPrompt)
					return "", io.EOF
				}
				buf.Delete()
			case CharLineStart:
				buf.MoveToLineStart()
			case CharLineEnd:
				buf.MoveToLineEnd()
			case CharBackward:
				buf.MoveBackward()
			case CharForward:
				buf.MoveForward()
			case CharCtrlH, CharBackspace:
				buf.Backspace()
			case CharKill:
				buf.Kill()
			case CharKillFront:
				buf.KillFront()
			case CharKillWordBck:
				buf.BackEscapeWord()
			case CharYank:
				buf.Yank()
			case CharTranspose:
				buf.Transpose()
			case CharClear:
				buf.Clear()
			case CharSuspend:
				i.suspend(buf)
			case CharBell:
			default:
				if k.r == CharTab || k.r >= 0x20 {
					buf.WriteRune(k.r)
				}
			}
		}
		// Up/Down and unknown sequences are ignored, there is no history
	}
}

func (i *Instance) meta(buf *runeutil.RuneBuffer, r rune) {
	switch r {
	case 'b':
		buf.MoveToPrevWord()
	case 'f':
		buf.MoveToNextWord()
	case 'd':
		buf.DeleteWord()
	case CharBackspace:
		buf.BackEscapeWord()
	}
}

// suspend stops the process with the terminal back in its original mode
// and picks up editing once it is continued.
func (i *Instance) suspend(buf *runeutil.RuneBuffer) {
	if i.fd < 0 {
		return
	}
	buf.Clean()
	_ = termios.SetMode(i.fd, i.base)

	SuspendMe()

	_ = termios.SetMode(i.fd, termios.Raw(i.base, false))
	buf.SetScreenWidth(i.screenWidth())
	buf.Refresh(nil)
}

// readPlain reads up to and including the next newline without reading
// ahead, so whatever follows stays in the input for the next reader.
func (i *Instance) readPlain() (string, error) {
	if _, err := io.WriteString(i.cfg.Stdout, i.cfg.Prompt); err != nil {
		return "", &EditorError{Op: "write prompt", Err: err}
	}
	var line []byte
	for {
		b, err := i.keys.readByte()
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return "", io.EOF
			}
			break
		} else if err != nil {
			return "", &EditorError{Op: "read", Err: err}
		}
		if b == '\n' {
			break
		}
		line = append(line, b)
	}
	return strings.TrimSuffix(string(line), "\r"), nil
}
