package runner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yacobolo/cssfmt"
)

// Highlight renders formatted lines like cssfmt.Lines.String, styling each
// fragment by its kind when useColors is set.
func Highlight(lines cssfmt.Lines, useColors bool) string {
	if !useColors {
		return lines.String()
	}

	var b strings.Builder
	for _, l := range lines {
		if l.String() != "" {
			b.WriteString(cssfmt.Spaces(l.Indent))
			for _, f := range l.Fragments {
				if style, ok := fragmentStyle(f.Kind); ok {
					b.WriteString(RenderStyle(style, f.Text, true))
				} else {
					b.WriteString(f.Text)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func fragmentStyle(kind cssfmt.FragmentKind) (lipgloss.Style, bool) {
	switch kind {
	case cssfmt.FragmentComment:
		return StyleComment, true
	case cssfmt.FragmentHeader:
		return StyleHeader, true
	case cssfmt.FragmentSelector:
		return StyleSelector, true
	case cssfmt.FragmentPropertyName:
		return StylePropertyName, true
	case cssfmt.FragmentPropertyValue:
		return StylePropertyValue, true
	}
	return lipgloss.Style{}, false
}
