package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssfmt/internal/runner"
)

// errIssuesFound fails a check that reported issues.
var errIssuesFound = errors.New("issues found")

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report stylesheets that are not formatted",
	Long: `Check that files are already formatted, without changing them.
Files that would change are reported as warnings and files that fail to
parse as errors. The exit code is 1 when any issue is found.

With no paths, the current directory is checked.`,
	Example: `  cssfmt check
  cssfmt check "web/**/*.css" --output-format summary
  cssfmt check styles/ --output-format json > report.json`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (format) or (syntax) suffix on issues")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := buildFormatConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	log := newLogger()
	result, err := runner.Run(cmd.Context(), runner.Config{
		Paths:       args,
		Concurrency: k.Int("concurrency"),
		Format:      cfg,
		Logger:      &log,
	})
	if err != nil {
		return err
	}

	quiet := k.Bool("quiet")
	if !quiet {
		format := runner.DetermineOutputFormat(k.String("output-format"), quiet)
		if err := runner.WriteOutput(cmd.OutOrStdout(), result, format, runner.ReportOptions{
			UseColors:        k.Bool("color"),
			PrintIssuedLines: k.Bool("print-lines"),
			PrintLinterName:  k.Bool("print-linter-name"),

			MaxIssuesPerLinter: k.Int("max-issues-per-linter"),
			MaxSameIssues:      k.Int("max-same-issues"),
		}); err != nil {
			return err
		}
	}

	if len(runner.Issues(result)) > 0 {
		return errIssuesFound
	}
	return nil
}
