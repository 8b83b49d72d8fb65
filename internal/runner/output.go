package runner

import (
	"fmt"
	"io"
)

// OutputFormat selects how check results are written
type OutputFormat string

// Output formats
const (
	OutputIssues  OutputFormat = "issues"
	OutputSummary OutputFormat = "summary"
	OutputJSON    OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputSummary:
		return OutputSummary
	case OutputJSON:
		return OutputJSON
	}
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts ReportOptions) error {
	issues := Issues(result)

	switch format {
	case OutputSummary:
		NewReporter(w, opts).PrintStatistics(result)

	case OutputJSON:
		if err := WriteJSON(w, result, issues); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	default:
		reporter := NewReporter(w, opts)
		shown, hidden := LimitIssues(issues, opts.MaxIssuesPerLinter, opts.MaxSameIssues)
		reporter.PrintIssues(shown)
		if hidden > 0 {
			fmt.Fprintf(w, "... and %s not shown\n", pluralizeCount(hidden, "more issue", "more issues"))
		}
		reporter.PrintSummary(issues)
	}
	return nil
}
