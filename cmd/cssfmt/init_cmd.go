package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssfmt.yaml config file",
	Long:  `Create a .cssfmt.yaml configuration file in the current directory with the default layout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssfmt.yaml"); err == nil && !force {
			return fmt.Errorf(".cssfmt.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssfmt.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssfmt.yaml")
		return nil
	},
}

const defaultConfig = `# cssfmt configuration
# Environment variables override this file, e.g.
#   CSSFMT_FORMAT__SELECTORS__MAX_LENGTH=60

# Shared settings
verbose: false
concurrency: 0              # 0 = number of CPUs

# check command
output-format: issues       # issues | summary | json
print-lines: true
print-linter-name: true
max-issues-per-linter: 0    # 0 = unlimited
max-same-issues: 0          # 0 = unlimited

# At-rules whose blocks hold nested rules
keywords:
  - "@media"

# Place a table of contents above the output
with-toc: false

format:
  indent: 4
  selectors:
    new-line: true
    lines-before: 0
    lines-before-comment: 0
    max-length: 90            # 0 = never wrap
    force-per-line: false
    combinated-per-line: true
    lines-before-multi: 0
    multispace: 1
    hierarchy: false
  braces:
    open-new-line: false
    open-indent: 1
    open-indent-after: 0
    close-new-line: true
    close-indent: 0
    close-indent-after: 0
  property:
    new-line: true
    space-between: 1
    close-last: true
    indent-after: 0
  comments:
    render: true
    render-property: true
    render-property-inline: true
    lines-before: 2
    lines-after: 0
    inline-space: 1

toc:
  line-numbers: false
  indent-sections: false
  depth-indent: 4
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
