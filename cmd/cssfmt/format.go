package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssfmt/internal/runner"
)

// stdinPath names standard input in results and messages.
const stdinPath = "<stdin>"

var formatCmd = &cobra.Command{
	Use:   "format [paths...]",
	Short: "Format CSS stylesheets",
	Long: `Format files, directories or doublestar patterns such as "web/**/*.css".
Directories are searched for .css files; minified and gitignored files are
skipped. With no paths, or "-", standard input is formatted.

Formatted output goes to standard output unless --write is given.`,
	Example: `  cssfmt format app.css
  cssfmt format --write styles/
  cssfmt format --toc --line-numbers - < app.css`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFormat,
}

func init() {
	addFormatFlags(formatCmd.Flags())
}

// runFormat is shared between `cssfmt` and `cssfmt format`.
func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := buildFormatConfig()
	if err != nil {
		return err
	}
	write := k.Bool("write")
	useColors := runner.ShouldUseColors(k.Bool("color"))

	if readsStdin(args) {
		if write {
			return errors.New("cannot use --write with standard input")
		}
		name, src, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		res := runner.FormatSource(name, string(src), cfg)
		if res.Err != nil {
			return res.Err
		}
		if !k.Bool("quiet") {
			fmt.Fprint(cmd.OutOrStdout(), runner.Highlight(res.Lines, useColors))
		}
		return nil
	}

	log := newLogger()
	result, err := runner.Run(cmd.Context(), runner.Config{
		Paths:       args,
		Write:       write,
		Concurrency: k.Int("concurrency"),
		Format:      cfg,
		Logger:      &log,
	})
	if err != nil {
		return err
	}

	for _, res := range result.Files {
		switch {
		case res.Err != nil:
			log.Error().Str("file", res.Path).Err(res.Err).Msg("not formatted")
		case write:
			if res.Written {
				log.Info().Str("file", res.Path).Msg("rewritten")
			}
		case !k.Bool("quiet"):
			fmt.Fprint(cmd.OutOrStdout(), runner.Highlight(res.Lines, useColors))
		}
	}

	if result.FilesFailed > 0 {
		return fmt.Errorf("%d of %d files failed to format", result.FilesFailed, result.FilesScanned)
	}
	return nil
}

// readsStdin reports whether args select standard input.
func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// readInput returns the contents of the single path argument, or of
// standard input when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (name string, src []byte, err error) {
	if readsStdin(args) {
		src, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stdinPath, nil, fmt.Errorf("reading standard input: %w", err)
		}
		return stdinPath, src, nil
	}

	src, err = os.ReadFile(args[0])
	if err != nil {
		return args[0], nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], src, nil
}
