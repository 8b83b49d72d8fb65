package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file of the working directory once.
// A missing .gitignore disables the check.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isMinified reports whether path is a minified build artifact.
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css")
}

// shouldSkipFile reports whether a discovered file is left alone: minified
// stylesheets always, gitignored files only for relative paths.
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if isMinified(path) {
		return true
	}
	if !filepath.IsAbs(path) && gi != nil && gi.MatchesPath(path) {
		return true
	}
	return false
}

// ExpandPaths turns files, directories and doublestar patterns into a
// de-duplicated list of files. Directories expand to every .css file below
// them. A plain path that does not exist is an error; a pattern matching
// nothing is not.
func ExpandPaths(patterns []string) ([]string, ScanStats, error) {
	return expandPaths(patterns, loadGitIgnore())
}

func expandPaths(patterns []string, gi *ignore.GitIgnore) ([]string, ScanStats, error) {
	var (
		files []string
		stats ScanStats
		seen  = make(map[string]bool)
	)

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			pattern = filepath.Join(pattern, "**", "*.css")
		case err != nil && !hasMeta(pattern):
			return nil, stats, fmt.Errorf("path %q: %w", pattern, err)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
