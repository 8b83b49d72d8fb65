// Package cssfmt parses, reformats and indexes CSS stylesheets.
//
// Source text is parsed into a small document model of comments, selector
// groups, nested blocks such as @media and statement at-rules. The
// Formatter lays that model out as Lines made of typed fragments, so the
// result can be written as plain text or styled per fragment kind.
//
// # Formatting
//
//	cfg := cssfmt.DefaultConfig()
//	cfg.Format.Selectors.MaxLength = 60
//	out, err := cssfmt.FormatString(src, cfg)
//
// # Table of contents
//
// Selector comments opening with two or more stars are headings. With
// WithTOC set, a comment block indexing them is placed above the output:
//
//	/** Layout */
//	/*** Header */
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssfmt/cmd/cssfmt@latest
package cssfmt

import (
	"fmt"
	"slices"
)

// Config bundles the parser, formatter and table of contents settings of
// one formatting run.
type Config struct {
	Keywords []string      `koanf:"keywords" json:"keywords"`
	Format   FormatOptions `koanf:"format" json:"format"`
	TOC      TOCOptions    `koanf:"toc" json:"toc"`
	WithTOC  bool          `koanf:"with-toc" json:"with-toc"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Keywords: slices.Clone(DefaultKeywords),
		Format:   DefaultFormatOptions(),
		TOC:      DefaultTOCOptions(),
	}
}

// FormatLines parses src and lays it out according to cfg.
func FormatLines(src string, cfg Config) (Lines, error) {
	nodes, err := NewParser(cfg.Keywords...).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	lines := Format(nodes, cfg.Format)
	if cfg.WithTOC {
		lines = BuildTOC(lines, cfg.TOC)
	}
	return lines, nil
}

// FormatString is FormatLines rendered as text.
func FormatString(src string, cfg Config) (string, error) {
	lines, err := FormatLines(src, cfg)
	if err != nil {
		return "", err
	}
	return lines.String(), nil
}
