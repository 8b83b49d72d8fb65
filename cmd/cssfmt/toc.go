package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssfmt"
	"github.com/yacobolo/cssfmt/internal/runner"
)

var tocCmd = &cobra.Command{
	Use:   "toc [file]",
	Short: "Print the table of contents of a stylesheet",
	Long: `Print only the table of contents that --toc would place above the
formatted stylesheet. Line numbers refer to that combined output.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTOC,
}

func init() {
	tocCmd.Flags().Bool("line-numbers", false, "Show output line numbers")
}

func runTOC(cmd *cobra.Command, args []string) error {
	cfg, err := buildFormatConfig()
	if err != nil {
		return err
	}
	cfg.WithTOC = false

	name, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	lines, err := cssfmt.FormatLines(string(src), cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	toc := cssfmt.TableOfContents(lines, cfg.TOC)
	fmt.Fprint(cmd.OutOrStdout(), runner.Highlight(toc, runner.ShouldUseColors(k.Bool("color"))))
	return nil
}
