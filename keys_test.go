package ttyline

import (
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllKeys(t *testing.T, input string) []key {
	t.Helper()
	k := newKeyReader(strings.NewReader(input), -1, time.Millisecond)
	var keys []key
	for {
		kk, err := k.readKey()
		if err == io.EOF {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, kk)
	}
}

func TestReadKeyInvalidUTF8(t *testing.T) {
	cases := []struct {
		input  string
		expect []key
	}{
		{input: "\xc3\r", expect: []key{{r: utf8.RuneError}, {r: '\r'}}},
		{input: "\xc3\x03", expect: []key{{r: utf8.RuneError}, {r: '\x03'}}},
		{input: "\xf0\x9f\x1b[D", expect: []key{{r: utf8.RuneError}, {code: keyLeft}}},
		{input: "\xe4\xb8é", expect: []key{{r: utf8.RuneError}, {r: 'é'}}},
		{input: "\xff", expect: []key{{r: utf8.RuneError}}},
		{input: "é世", expect: []key{{r: 'é'}, {r: '世'}}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expect, readAllKeys(t, tc.input), "%q", tc.input)
	}
}

func TestReadKeyAlt(t *testing.T) {
	assert.Equal(t, []key{{r: 'b', meta: true}, {code: keyEscape}}, readAllKeys(t, "\x1bb\x1b"))
}
