package runeutil

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// RuneBuffer is the editable line behind a prompt. Every edit redraws the
// prompt and the line on w and leaves the terminal cursor at the edit
// position. Lines longer than the screen wrap; the buffer keeps track of
// the row the cursor was left on so the next redraw starts from the top.
type RuneBuffer struct {
	w           io.Writer
	prompt      []rune
	promptWidth int
	mask        rune
	screenWidth int

	mu  sync.Mutex
	idx int
	buf []rune

	lastKill []rune

	drawn     bool
	cursorRow int

	err error
}

// NewRuneBuffer returns an empty buffer drawing on w. A zero mask shows the
// input as typed; screenWidth <= 0 means the width is unknown and the line
// is treated as never wrapping.
func NewRuneBuffer(w io.Writer, prompt string, mask rune, screenWidth int) *RuneBuffer {
	rb := &RuneBuffer{
		w:           w,
		mask:        mask,
		screenWidth: screenWidth,
	}
	rb.setPrompt(prompt)
	return rb
}

func (rb *RuneBuffer) SetPrompt(prompt string) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.setPrompt(prompt)
}

func (rb *RuneBuffer) setPrompt(prompt string) {
	rb.prompt = []rune(prompt)
	rb.promptWidth = WidthAll(ColorFilter(rb.prompt))
}

func (rb *RuneBuffer) SetMask(mask rune) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.mask = mask
}

func (rb *RuneBuffer) SetScreenWidth(screenWidth int) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.screenWidth = screenWidth
}

func (rb *RuneBuffer) Index() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.idx
}

func (rb *RuneBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return len(rb.buf)
}

func (rb *RuneBuffer) Runes() []rune {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return Copy(rb.buf)
}

func (rb *RuneBuffer) String() string {
	return string(rb.Runes())
}

// Refresh applies f to the buffer state and redraws.
func (rb *RuneBuffer) Refresh(f func()) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if f != nil {
		f()
	}
	rb.render()
}

// Set replaces the content and puts the cursor at idx.
func (rb *RuneBuffer) Set(idx int, buf []rune) {
	rb.Refresh(func() {
		rb.buf = Copy(buf)
		switch {
		case idx < 0:
			rb.idx = 0
		case idx > len(rb.buf):
			rb.idx = len(rb.buf)
		default:
			rb.idx = idx
		}
	})
}

// SetRunes replaces the content and puts the cursor at its end.
func (rb *RuneBuffer) SetRunes(s []rune) {
	rb.Set(len(s), s)
}

// Finish moves the cursor past the end of the input and starts a new
// line. The next draw starts from scratch.
func (rb *RuneBuffer) Finish() {
	rb.FinishWith("")
}

// FinishWith is Finish with msg printed after the input, as in "^C".
func (rb *RuneBuffer) FinishWith(msg string) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.idx = len(rb.buf)
	rb.render()
	rb.write([]byte(msg + "\r\n"))
	rb.drawn = false
	rb.cursorRow = 0
}

// Clean erases what was drawn, leaving the cursor where the prompt started.
func (rb *RuneBuffer) Clean() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if !rb.drawn {
		return
	}
	var out bytes.Buffer
	rb.writeHome(&out)
	out.WriteString("\033[J")
	rb.write(out.Bytes())
	rb.drawn = false
	rb.cursorRow = 0
}

// Clear clears the whole screen and redraws at the top.
func (rb *RuneBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.write([]byte("\033[H\033[2J"))
	rb.drawn = false
	rb.cursorRow = 0
	rb.render()
}

func (rb *RuneBuffer) WriteRune(r rune) {
	rb.WriteRunes([]rune{r})
}

func (rb *RuneBuffer) WriteString(s string) {
	rb.WriteRunes([]rune(s))
}

func (rb *RuneBuffer) WriteRunes(s []rune) {
	rb.Refresh(func() {
		tail := append(Copy(s), rb.buf[rb.idx:]...)
		rb.buf = append(rb.buf[:rb.idx], tail...)
		rb.idx += len(s)
	})
}

func (rb *RuneBuffer) MoveToLineStart() {
	rb.Refresh(func() {
		rb.idx = 0
	})
}

func (rb *RuneBuffer) MoveToLineEnd() {
	rb.Refresh(func() {
		rb.idx = len(rb.buf)
	})
}

func (rb *RuneBuffer) MoveBackward() {
	rb.Refresh(func() {
		if rb.idx > 0 {
			rb.idx--
		}
	})
}

func (rb *RuneBuffer) MoveForward() {
	rb.Refresh(func() {
		if rb.idx < len(rb.buf) {
			rb.idx++
		}
	})
}

func (rb *RuneBuffer) MoveToPrevWord() {
	rb.Refresh(func() {
		rb.idx = rb.prevWordStart()
	})
}

func (rb *RuneBuffer) MoveToNextWord() {
	rb.Refresh(func() {
		rb.idx = rb.nextWordEnd()
	})
}

func (rb *RuneBuffer) prevWordStart() int {
	i := rb.idx
	for i > 0 && IsWordBreak(rb.buf[i-1]) {
		i--
	}
	for i > 0 && !IsWordBreak(rb.buf[i-1]) {
		i--
	}
	return i
}

func (rb *RuneBuffer) nextWordEnd() int {
	i := rb.idx
	for i < len(rb.buf) && IsWordBreak(rb.buf[i]) {
		i++
	}
	for i < len(rb.buf) && !IsWordBreak(rb.buf[i]) {
		i++
	}
	return i
}

func (rb *RuneBuffer) Backspace() {
	rb.Refresh(func() {
		if rb.idx == 0 {
			return
		}
		rb.idx--
		rb.buf = append(rb.buf[:rb.idx], rb.buf[rb.idx+1:]...)
	})
}

// Delete removes the rune under the cursor and reports whether there was one.
func (rb *RuneBuffer) Delete() (success bool) {
	rb.Refresh(func() {
		if rb.idx == len(rb.buf) {
			return
		}
		rb.buf = append(rb.buf[:rb.idx], rb.buf[rb.idx+1:]...)
		success = true
	})
	return
}

// DeleteWord kills from the cursor to the end of the next word.
func (rb *RuneBuffer) DeleteWord() {
	rb.Refresh(func() {
		end := rb.nextWordEnd()
		if end == rb.idx {
			return
		}
		rb.pushKill(rb.buf[rb.idx:end])
		rb.buf = append(rb.buf[:rb.idx], rb.buf[end:]...)
	})
}

// BackEscapeWord kills from the start of the previous word to the cursor.
func (rb *RuneBuffer) BackEscapeWord() {
	rb.Refresh(func() {
		start := rb.prevWordStart()
		if start == rb.idx {
			return
		}
		rb.pushKill(rb.buf[start:rb.idx])
		rb.buf = append(rb.buf[:start], rb.buf[rb.idx:]...)
		rb.idx = start
	})
}

// Kill kills from the cursor to the end of the line.
func (rb *RuneBuffer) Kill() {
	rb.Refresh(func() {
		if rb.idx == len(rb.buf) {
			return
		}
		rb.pushKill(rb.buf[rb.idx:])
		rb.buf = rb.buf[:rb.idx]
	})
}

// KillFront kills from the start of the line to the cursor.
func (rb *RuneBuffer) KillFront() {
	rb.Refresh(func() {
		if rb.idx == 0 {
			return
		}
		rb.pushKill(rb.buf[:rb.idx])
		rb.buf = append(rb.buf[:0], rb.buf[rb.idx:]...)
		rb.idx = 0
	})
}

// Yank inserts the last killed text at the cursor.
func (rb *RuneBuffer) Yank() {
	rb.Refresh(func() {
		if len(rb.lastKill) == 0 {
			return
		}
		tail := append(Copy(rb.lastKill), rb.buf[rb.idx:]...)
		rb.buf = append(rb.buf[:rb.idx], tail...)
		rb.idx += len(rb.lastKill)
	})
}

// Transpose swaps the rune before the cursor with the one under it, or the
// last two runes when the cursor is at the end.
func (rb *RuneBuffer) Transpose() {
	rb.Refresh(func() {
		if len(rb.buf) < 2 {
			return
		}
		if rb.idx == 0 {
			rb.idx = 1
		} else if rb.idx >= len(rb.buf) {
			rb.idx = len(rb.buf) - 1
		}
		rb.buf[rb.idx], rb.buf[rb.idx-1] = rb.buf[rb.idx-1], rb.buf[rb.idx]
		rb.idx++
	})
}

func (rb *RuneBuffer) pushKill(text []rune) {
	rb.lastKill = Copy(text)
}

// write sends p to the output. After the first failure nothing more is
// written and Err reports it.
func (rb *RuneBuffer) write(p []byte) {
	if rb.err != nil {
		return
	}
	if _, err := rb.w.Write(p); err != nil {
		rb.err = err
	}
}

// Err returns the first error writing to the output, if any.
func (rb *RuneBuffer) Err() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.err
}

func (rb *RuneBuffer) displayWidth(s []rune) int {
	if rb.mask != 0 {
		return len(s) * Width(rb.mask)
	}
	return WidthAll(s)
}

func (rb *RuneBuffer) display(s []rune) string {
	if rb.mask != 0 {
		return strings.Repeat(string(rb.mask), len(s))
	}
	return strings.ReplaceAll(string(s), "\t", strings.Repeat(" ", TabWidth))
}

// writeHome moves from the last drawn cursor position to column 0 of the
// prompt row.
func (rb *RuneBuffer) writeHome(out *bytes.Buffer) {
	if rb.drawn && rb.cursorRow > 0 {
		fmt.Fprintf(out, "\033[%dA", rb.cursorRow)
	}
	out.WriteByte('\r')
}

func (rb *RuneBuffer) render() {
	var out bytes.Buffer
	rb.writeHome(&out)
	out.WriteString("\033[J")
	out.WriteString(string(rb.prompt))
	out.WriteString(rb.display(rb.buf))

	end := rb.promptWidth + rb.displayWidth(rb.buf)
	cur := rb.promptWidth + rb.displayWidth(rb.buf[:rb.idx])
	if rb.screenWidth > 0 {
		if end > 0 && end%rb.screenWidth == 0 {
			// terminals hold the cursor on the last column until the next
			// character, force the wrap so row arithmetic stays right
			out.WriteString(" \b")
		}
		endRow, curRow := end/rb.screenWidth, cur/rb.screenWidth
		if up := endRow - curRow; up > 0 {
			fmt.Fprintf(&out, "\033[%dA", up)
		}
		out.WriteByte('\r')
		if col := cur % rb.screenWidth; col > 0 {
			fmt.Fprintf(&out, "\033[%dC", col)
		}
		rb.cursorRow = curRow
	} else {
		if back := end - cur; back > 0 {
			fmt.Fprintf(&out, "\033[%dD", back)
		}
		rb.cursorRow = 0
	}
	rb.drawn = true
	rb.write(out.Bytes())
}

// Copy returns a fresh copy of s.
func Copy(s []rune) []rune {
	result := make([]rune, len(s))
	copy(result, s)
	return result
}
