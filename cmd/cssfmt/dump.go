package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssfmt"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the parsed document tree",
	Long: `Parse a stylesheet and print its document tree, for debugging the
parser or tooling built on the library.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().Bool("json", false, "Print the tree as JSON")
}

// dumpNode tags a node with its type in JSON output.
type dumpNode struct {
	Type string      `json:"type"`
	Node cssfmt.Node `json:"node"`
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := buildFormatConfig()
	if err != nil {
		return err
	}

	name, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	nodes, err := cssfmt.NewParser(cfg.Keywords...).Parse(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	w := cmd.OutOrStdout()
	if !k.Bool("json") {
		_, err := pretty.Fprintf(w, "%# v\n", nodes)
		return err
	}

	out := make([]dumpNode, len(nodes))
	for i, n := range nodes {
		out[i] = dumpNode{Type: nodeType(n), Node: n}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// nodeType returns the kebab-case type name of n, e.g. "selector-group".
func nodeType(n cssfmt.Node) string {
	return strcase.ToKebab(strings.TrimPrefix(fmt.Sprintf("%T", n), "*cssfmt."))
}
