package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// InitLogger sets the default slog logger, backed by a charmbracelet handler
// with compact time format.
//   - level is one of debug, info, warn, error
//   - a non-empty logFile receives a copy of everything written to stderr
//
// The returned cleanup closes the log file, if any.
func InitLogger(level string, logFile string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	cleanup := func() {}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stderr, file)
		cleanup = func() { file.Close() }
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		ReportCaller:    lvl == log.DebugLevel,
	})
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}
