package cssfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaces(t *testing.T) {
	assert.Equal(t, "", Spaces(-1))
	assert.Equal(t, "", Spaces(0))
	assert.Equal(t, "   ", Spaces(3))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "x", Indent("x", 0, ""))
	assert.Equal(t, "        x", Indent("x", 2, ""))
	assert.Equal(t, "\t\tx", Indent("x", 2, "\t"))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "  x", PadLeft("x", 2, ""))
	assert.Equal(t, "00x", PadLeft("x", 2, "0"))
	assert.Equal(t, "x", PadLeft("x", -1, "0"))
}

func TestMinLeft(t *testing.T) {
	assert.Equal(t, "   12", MinLeft("12", 5, " "))
	assert.Equal(t, "123456", MinLeft("123456", 5, " "))
	assert.Equal(t, "  é", MinLeft("é", 3, ""))
}
