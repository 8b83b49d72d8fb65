package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssfmt"
)

func TestIssues(t *testing.T) {
	cfg := cssfmt.DefaultConfig()
	result := &Result{Files: []FileResult{
		FormatSource("ok.css", formatted, cfg),
		FormatSource("messy.css", "a {\n  color: red;\n}\n", cfg),
		FormatSource("broken.css", "a {\n  color: red;\n}\n}", cfg),
		{Path: "gone.css", Err: errors.New("read gone.css: no such file")},
	}}

	issues := Issues(result)
	require.Len(t, issues, 3)

	assert.Equal(t, Issue{
		FromLinter:  LinterFormat,
		Text:        IssueNotFormatted,
		Severity:    SeverityWarning,
		SourceLines: []string{"  color: red;"},
		Pos:         IssuePos{Filename: "messy.css", Line: 2, Column: 3},
	}, issues[0])

	assert.Equal(t, Issue{
		FromLinter:  LinterSyntax,
		Text:        "unexpected '}' outside of a block",
		Severity:    SeverityError,
		SourceLines: []string{"}"},
		Pos:         IssuePos{Filename: "broken.css", Line: 4, Column: 1},
	}, issues[1])

	assert.Equal(t, LinterSyntax, issues[2].FromLinter)
	assert.Equal(t, "read gone.css: no such file", issues[2].Text)
	assert.Equal(t, 0, issues[2].Pos.Line)
	assert.Empty(t, issues[2].SourceLines)
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		line int
		col  int
	}{
		{"same", "a\nb", "a\nb", 1, 1},
		{"second line", "a\nbc", "a\nbd", 2, 2},
		{"missing line", "a", "a\nb", 2, 1},
		{"first column", "x", "y", 1, 1},
		{"multibyte", "é1", "é2", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := firstDifference(tt.a, tt.b)
			require.Equal(t, tt.line, line)
			require.Equal(t, tt.col, col)
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterFormat, Text: IssueNotFormatted},
		{FromLinter: LinterFormat, Text: IssueNotFormatted},
		{FromLinter: LinterFormat, Text: IssueNotFormatted},
		{FromLinter: LinterSyntax, Text: "unterminated comment"},
		{FromLinter: LinterSyntax, Text: "missing property name"},
	}

	tests := []struct {
		name         string
		maxPerLinter int
		maxSame      int
		wantKept     int
		wantHidden   int
	}{
		{"unlimited", 0, 0, 5, 0},
		{"per linter", 1, 0, 2, 3},
		{"same text", 0, 2, 4, 1},
		{"both", 2, 1, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, hidden := LimitIssues(issues, tt.maxPerLinter, tt.maxSame)
			assert.Len(t, kept, tt.wantKept)
			assert.Equal(t, tt.wantHidden, hidden)
		})
	}
}
