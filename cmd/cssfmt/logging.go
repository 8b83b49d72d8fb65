package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yacobolo/cssfmt/internal/runner"
)

// newLogger returns the stderr console logger. --quiet silences it and
// --verbose lowers the level to debug.
func newLogger() zerolog.Logger {
	if k.Bool("quiet") {
		return zerolog.Nop()
	}

	level := zerolog.WarnLevel
	if k.Bool("verbose") {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !runner.ShouldUseColors(k.Bool("color")),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
