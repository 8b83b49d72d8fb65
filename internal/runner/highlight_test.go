package runner

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssfmt"
)

func TestHighlight(t *testing.T) {
	nodes, err := cssfmt.Parse("/* note */\n@media print {\na{color:red} /* x */\n}\n@import url(a.css);")
	require.NoError(t, err)
	lines := cssfmt.Format(nodes, cssfmt.DefaultFormatOptions())

	assert.Equal(t, lines.String(), Highlight(lines, false))
	assert.Equal(t, lines.String(), ansi.Strip(Highlight(lines, true)))
}

func TestHighlightColorsWithoutTerminal(t *testing.T) {
	// Test output is never a terminal, so escapes only appear when the
	// color profile is forced.
	lines := cssfmt.Format(mustParseNodes(t, "a{color:red}"), cssfmt.DefaultFormatOptions())

	colored := Highlight(lines, true)
	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, Highlight(lines, false), "\x1b[")
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "x", RenderStyle(StyleRed, "x", false))

	got := RenderStyle(StyleRed, "x", true)
	assert.NotEqual(t, "x", got)
	assert.Equal(t, "x", ansi.Strip(got))
}

func mustParseNodes(t *testing.T, src string) []cssfmt.Node {
	t.Helper()
	nodes, err := cssfmt.Parse(src)
	require.NoError(t, err)
	return nodes
}

func TestFragmentStyle(t *testing.T) {
	_, ok := fragmentStyle(cssfmt.FragmentSelector)
	assert.True(t, ok)
	_, ok = fragmentStyle(cssfmt.FragmentSpace)
	assert.False(t, ok)
}
