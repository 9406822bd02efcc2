package runeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width('a'))
	assert.Equal(t, 2, Width('世'))
	assert.Equal(t, 0, Width('\u0301'))
	assert.Equal(t, TabWidth, Width('\t'))
	assert.Equal(t, 4+TabWidth, WidthAll([]rune("a世\tb")))
}

func TestColorFilter(t *testing.T) {
	styled := []rune("\033[1;34mName:\033[0m ")
	assert.Equal(t, "Name: ", string(ColorFilter(styled)))
	assert.Equal(t, 6, WidthAll(ColorFilter(styled)))

	// an unterminated sequence is kept as is
	assert.Equal(t, "\033[1", string(ColorFilter([]rune("\033[1"))))
	assert.Equal(t, "x\033", string(ColorFilter([]rune("x\033"))))
}

func TestIsWordBreak(t *testing.T) {
	assert.False(t, IsWordBreak('a'))
	assert.False(t, IsWordBreak('7'))
	assert.False(t, IsWordBreak('é'))
	assert.True(t, IsWordBreak(' '))
	assert.True(t, IsWordBreak('-'))
}
