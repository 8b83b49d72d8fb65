package runner

import (
	"github.com/rs/zerolog"

	"github.com/yacobolo/cssfmt"
)

// Config holds the configuration for a batch formatting run
type Config struct {
	Paths       []string      // files, directories or doublestar patterns
	Write       bool          // rewrite files whose formatting changed
	Concurrency int           // files formatted in parallel, 0 means runtime.NumCPU()
	Format      cssfmt.Config // parser, layout and table of contents settings
	Logger      *zerolog.Logger
}

// FileResult is the outcome of formatting one file
type FileResult struct {
	Path    string
	Source  string
	Output  string       // empty when Err is set
	Lines   cssfmt.Lines // Output before rendering, for highlighting
	Changed bool
	Written bool
	Err     error // read or parse failure
}

// Result contains statistics and per-file outcomes of a run
type Result struct {
	Files        []FileResult // in the order the paths expanded
	FilesScanned int
	FilesSkipped int
	FilesChanged int
	FilesFailed  int
}

// ScanStats tracks path expansion statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Minified or gitignored files
}
