// Package main provides the cssfmt CLI for formatting CSS stylesheets.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(1)
	}
}

// handleError prints command errors. A failed check has already reported
// its issues and only sets the exit code.
func handleError(w io.Writer, _ fang.Styles, err error) {
	if errors.Is(err, errIssuesFound) {
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err.Error())
}
