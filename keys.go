package ttyline

import (
	"bytes"
	"io"
	"time"
	"unicode/utf8"

	"github.com/wader/ttyline/termios"
)

type keyCode int

const (
	keyRune keyCode = iota
	keyEscape
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyDelete
	keyWordLeft
	keyWordRight
	keyUnknown
)

type key struct {
	code keyCode
	r    rune
	// r was prefixed by Escape (Alt/Meta)
	meta bool
}

// keyReader decodes keys from the input one byte at a time so that nothing
// past the end of the line is consumed.
type keyReader struct {
	r       io.Reader
	fd      int
	timeout time.Duration
	one     [1]byte

	// byte handed back by unreadByte
	back    byte
	hasBack bool
}

// newKeyReader reads keys from r. fd is the terminal behind r, or -1 when
// r is not a terminal.
func newKeyReader(r io.Reader, fd int, timeout time.Duration) *keyReader {
	return &keyReader{r: r, fd: fd, timeout: timeout}
}

func (k *keyReader) readByte() (byte, error) {
	if k.hasBack {
		k.hasBack = false
		return k.back, nil
	}
	for {
		n, err := k.r.Read(k.one[:])
		if n == 1 {
			return k.one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// unreadByte makes b the next byte read.
func (k *keyReader) unreadByte(b byte) {
	k.back, k.hasBack = b, true
}

// pending reports whether more input follows a lone Escape within the key
// sequence timeout. Without a terminal to poll the next read decides.
func (k *keyReader) pending() (bool, error) {
	if k.hasBack || k.fd < 0 {
		return true, nil
	}
	return termios.WaitInput(k.fd, k.timeout)
}

func (k *keyReader) readKey() (key, error) {
	b, err := k.readByte()
	if err != nil {
		return key{}, err
	}
	if b != CharEscape {
		r, err := k.readRune(b)
		return key{code: keyRune, r: r}, err
	}

	more, err := k.pending()
	if err != nil {
		return key{}, err
	}
	if !more {
		return key{code: keyEscape}, nil
	}
	b, err = k.readByte()
	if err == io.EOF {
		return key{code: keyEscape}, nil
	} else if err != nil {
		return key{}, err
	}

	switch b {
	case '[':
		return k.readCSI()
	case 'O':
		return k.readSS3()
	case CharEscape:
		return key{code: keyEscape}, nil
	}
	r, err := k.readRune(b)
	return key{code: keyRune, r: r, meta: true}, err
}

// readRune completes the UTF-8 sequence that starts with b. A byte that
// cannot continue the sequence ends it as utf8.RuneError and is read again
// as the next key.
func (k *keyReader) readRune(b byte) (rune, error) {
	if b < utf8.RuneSelf {
		return rune(b), nil
	}
	var n int
	switch {
	case b&0xE0 == 0xC0:
		n = 2
	case b&0xF0 == 0xE0:
		n = 3
	case b&0xF8 == 0xF0:
		n = 4
	default:
		return utf8.RuneError, nil
	}
	p := make([]byte, 1, n)
	p[0] = b
	for len(p) < n {
		c, err := k.readByte()
		if err != nil {
			return utf8.RuneError, err
		}
		if utf8.RuneStart(c) {
			k.unreadByte(c)
			return utf8.RuneError, nil
		}
		p = append(p, c)
	}
	r, _ := utf8.DecodeRune(p)
	return r, nil
}

func (k *keyReader) readCSI() (key, error) {
	var params []byte
	for {
		b, err := k.readByte()
		if err != nil {
			return key{}, err
		}
		if b >= 0x40 && b <= 0x7E {
			return csiKey(params, b), nil
		}
		params = append(params, b)
		if len(params) > 16 {
			return key{code: keyUnknown}, nil
		}
	}
}

func csiKey(params []byte, final byte) key {
	// ESC [ 1 ; 5 C and friends carry a modifier
	modified := bytes.IndexByte(params, ';') >= 0
	switch final {
	case 'A':
		return key{code: keyUp}
	case 'B':
		return key{code: keyDown}
	case 'C':
		if modified {
			return key{code: keyWordRight}
		}
		return key{code: keyRight}
	case 'D':
		if modified {
			return key{code: keyWordLeft}
		}
		return key{code: keyLeft}
	case 'H':
		return key{code: keyHome}
	case 'F':
		return key{code: keyEnd}
	case '~':
		switch string(params) {
		case "1", "7":
			return key{code: keyHome}
		case "4", "8":
			return key{code: keyEnd}
		case "3":
			return key{code: keyDelete}
		}
	}
	return key{code: keyUnknown}
}

func (k *keyReader) readSS3() (key, error) {
	b, err := k.readByte()
	if err != nil {
		return key{}, err
	}
	switch b {
	case 'A':
		return key{code: keyUp}, nil
	case 'B':
		return key{code: keyDown}, nil
	case 'C':
		return key{code: keyRight}, nil
	case 'D':
		return key{code: keyLeft}, nil
	case 'H':
		return key{code: keyHome}, nil
	case 'F':
		return key{code: keyEnd}, nil
	}
	return key{code: keyUnknown}, nil
}
