package runner

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssfmt"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{
			name:       "explicit quiet flag",
			formatFlag: "",
			quiet:      true,
			expected:   OutputIssues,
		},
		{
			name:       "explicit issues format",
			formatFlag: "issues",
			expected:   OutputIssues,
		},
		{
			name:       "explicit summary format",
			formatFlag: "summary",
			expected:   OutputSummary,
		},
		{
			name:       "explicit json format",
			formatFlag: "json",
			expected:   OutputJSON,
		},
		{
			name:       "unknown format falls back to issues",
			formatFlag: "xml",
			expected:   OutputIssues,
		},
		{
			name:       "quiet overrides format flag",
			formatFlag: "json",
			quiet:      true,
			expected:   OutputIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func checkResult() *Result {
	cfg := cssfmt.DefaultConfig()
	return &Result{
		Files: []FileResult{
			FormatSource("ok.css", formatted, cfg),
			FormatSource("messy.css", "a{color:red}", cfg),
			FormatSource("broken.css", "a {", cfg),
		},
		FilesScanned: 3,
		FilesChanged: 1,
		FilesFailed:  1,
	}
}

func TestWriteJSON(t *testing.T) {
	result := checkResult()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result, Issues(result)))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:  2,
		Errors:       1,
		Warnings:     1,
		FilesScanned: 3,
		FilesChanged: 1,
		FilesFailed:  1,
	}, out.Summary)

	require.Len(t, out.Issues, 2)
	assert.Equal(t, "messy.css", out.Issues[0].File)
	assert.Equal(t, LinterFormat, out.Issues[0].Linter)
	assert.Equal(t, "a{color:red}", out.Issues[0].Source)
	assert.Equal(t, "broken.css", out.Issues[1].File)
	assert.Equal(t, SeverityError, out.Issues[1].Severity)
	assert.Equal(t, "unexpected end of input in declaration block", out.Issues[1].Message)
}

func TestWriteOutput(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	tests := []struct {
		name     string
		format   OutputFormat
		contains []string
	}{
		{
			name:     "issues",
			format:   OutputIssues,
			contains: []string{"messy.css:1:2: file is not formatted", "2 issues (1 error, 1 warning):"},
		},
		{
			name:     "summary",
			format:   OutputSummary,
			contains: []string{"Statistics", "  Need formatting:  1", "  Failed to parse:  1"},
		},
		{
			name:     "json",
			format:   OutputJSON,
			contains: []string{`"total_issues": 2`, `"file": "broken.css"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, checkResult(), tt.format, ReportOptions{UseColors: true}))

			plain := ansi.Strip(buf.String())
			for _, want := range tt.contains {
				assert.Contains(t, plain, want)
			}
		})
	}
}

func TestWriteOutputLimitsIssues(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	cfg := cssfmt.DefaultConfig()
	result := &Result{Files: []FileResult{
		FormatSource("a.css", "a{color:red}", cfg),
		FormatSource("b.css", "b{color:red}", cfg),
		FormatSource("c.css", "c{color:red}", cfg),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputIssues, ReportOptions{MaxSameIssues: 1}))

	plain := ansi.Strip(buf.String())
	assert.Contains(t, plain, "a.css:1:2: file is not formatted")
	assert.NotContains(t, plain, "b.css")
	assert.Contains(t, plain, "... and 2 more issues not shown")
	assert.Contains(t, plain, "3 issues:")
}
