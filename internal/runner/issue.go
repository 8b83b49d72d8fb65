package runner

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yacobolo/cssfmt"
)

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "syntax" or "format"
	Text        string   `json:"Text"`        // "unexpected '}' outside of a block"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 1-based, 0 when unknown
	Column   int    `json:"Column"` // 1-based, 0 when unknown
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter names
const (
	LinterSyntax = "syntax"
	LinterFormat = "format"
)

// IssueNotFormatted is the text of a formatting issue
const IssueNotFormatted = "file is not formatted"

// Issues lists one issue per file that failed or would change, in file order.
func Issues(result *Result) []Issue {
	var issues []Issue
	for _, res := range result.Files {
		if issue, ok := fileIssue(res); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

func fileIssue(res FileResult) (Issue, bool) {
	switch {
	case res.Err != nil:
		issue := Issue{
			FromLinter: LinterSyntax,
			Text:       res.Err.Error(),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: res.Path},
		}

		var syntaxErr *cssfmt.SyntaxError
		if errors.As(res.Err, &syntaxErr) {
			issue.Text = syntaxErr.Msg
			issue.Pos.Line = syntaxErr.Line
			issue.Pos.Column = syntaxErr.Column
			if line, ok := sourceLine(res.Source, syntaxErr.Line); ok {
				issue.SourceLines = []string{line}
			}
		}
		return issue, true

	case res.Changed:
		line, col := firstDifference(res.Source, res.Output)
		issue := Issue{
			FromLinter: LinterFormat,
			Text:       IssueNotFormatted,
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: res.Path, Line: line, Column: col},
		}
		if src, ok := sourceLine(res.Source, line); ok {
			issue.SourceLines = []string{src}
		}
		return issue, true
	}

	return Issue{}, false
}

// sourceLine returns the 1-based line n of src.
func sourceLine(src string, n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// firstDifference returns the 1-based line and column where a and b first differ.
func firstDifference(a, b string) (line, col int) {
	al, bl := strings.Split(a, "\n"), strings.Split(b, "\n")
	for i := 0; i < len(al) || i < len(bl); i++ {
		var x, y string
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		if i >= len(al) || i >= len(bl) || x != y {
			return i + 1, commonPrefixRunes(x, y) + 1
		}
	}
	return 1, 1
}

func commonPrefixRunes(a, b string) int {
	n := 0
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		if ra != rb {
			break
		}
		a, b = a[sa:], b[sb:]
		n++
	}
	return n
}

// LimitIssues keeps at most maxPerLinter issues from each linter and at most
// maxSame issues with the same text, in order. Zero disables a limit. It
// returns the kept issues and how many were dropped.
func LimitIssues(issues []Issue, maxPerLinter, maxSame int) ([]Issue, int) {
	perLinter := make(map[string]int)
	sameText := make(map[string]int)

	var kept []Issue
	for _, issue := range issues {
		if maxPerLinter > 0 && perLinter[issue.FromLinter] >= maxPerLinter {
			continue
		}
		if maxSame > 0 && sameText[issue.Text] >= maxSame {
			continue
		}
		perLinter[issue.FromLinter]++
		sameText[issue.Text]++
		kept = append(kept, issue)
	}
	return kept, len(issues) - len(kept)
}
