package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssfmt"
)

var rootCmd = &cobra.Command{
	Use:   "cssfmt [paths...]",
	Short: "Formatter and table of contents generator for CSS stylesheets",
	Long: `Reformat CSS stylesheets with a consistent layout.
Heading comments such as /** Layout */ can be indexed into a table of
contents placed above the stylesheet.

Without a subcommand, cssfmt behaves like "cssfmt format".`,
	Example: `  cssfmt styles/ --write
  cat app.css | cssfmt --toc
  cssfmt check "web/**/*.css"`,
	// PreRunE of formatCmd does not run when delegating from here.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runFormat(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".cssfmt.yaml", "Config file path")
	pf.Int("concurrency", 0, "Files formatted in parallel (0 = number of CPUs)")

	// Layout settings shared by every command that formats
	defaults := cssfmt.DefaultConfig()
	pf.StringSlice("keywords", defaults.Keywords, "At-rules whose blocks contain nested rules")
	pf.Int("indent", defaults.Format.Indent, "Spaces per indentation level")
	pf.Int("max-length", defaults.Format.Selectors.MaxLength, "Wrap selector lists longer than this (0 = never)")
	pf.Bool("hierarchy", false, "Indent rules under the rules they refine")

	addFormatFlags(rootCmd.Flags())

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addFormatFlags registers the flags of the format command. The root
// command carries them too since it formats by default.
func addFormatFlags(f *pflag.FlagSet) {
	f.BoolP("write", "w", false, "Write the result back to the source files")
	f.Bool("toc", false, "Place a table of contents above the output")
	f.Bool("line-numbers", false, "Show output line numbers in the table of contents")
	f.Bool("toc-indent", false, "Indent sections by their table of contents depth")
}
