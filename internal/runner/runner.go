// Package runner formats many stylesheets at once and reports on them.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/cssfmt"
)

// Run expands cfg.Paths and formats every file. Files are parsed and
// formatted independently and in parallel; a file that fails to read or
// parse is recorded in its FileResult and does not stop the run. Only
// failing to expand the paths or to write a file aborts.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	log := logger(cfg)

	files, stats, err := ExpandPaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug().
		Int("files", stats.FilesScanned).
		Int("skipped", stats.FilesSkipped).
		Msg("expanded paths")

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := formatFile(path, cfg)
			if err != nil {
				return err
			}
			results[i] = res

			if res.Err != nil {
				log.Warn().Str("file", path).Err(res.Err).Msg("format failed")
			} else {
				log.Debug().Str("file", path).Bool("changed", res.Changed).Msg("formatted")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Files:        results,
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}
	for _, res := range results {
		switch {
		case res.Err != nil:
			result.FilesFailed++
		case res.Changed:
			result.FilesChanged++
		}
	}

	log.Info().
		Int("scanned", result.FilesScanned).
		Int("changed", result.FilesChanged).
		Int("failed", result.FilesFailed).
		Msg("run complete")

	return result, nil
}

// FormatSource formats src, which was read from path. Parse errors are
// recorded in the result.
func FormatSource(path, src string, cfg cssfmt.Config) FileResult {
	res := FileResult{Path: path, Source: src}

	lines, err := cssfmt.FormatLines(src, cfg)
	if err != nil {
		res.Err = err
		return res
	}
	res.Lines = lines
	res.Output = lines.String()
	res.Changed = res.Output != src
	return res
}

// formatFile reads, formats and, when cfg.Write is set, rewrites one file.
// Only write failures are returned as errors.
func formatFile(path string, cfg Config) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}, nil
	}

	res := FormatSource(path, string(data), cfg.Format)
	if !cfg.Write || !res.Changed {
		return res, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(res.Output), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write %s: %w", path, err)
	}
	res.Written = true
	return res, nil
}

func logger(cfg Config) zerolog.Logger {
	if cfg.Logger == nil {
		return zerolog.Nop()
	}
	return *cfg.Logger
}
