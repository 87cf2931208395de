// Package logging opens the diagnostic log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger appending JSON lines to path together with a func
// closing the file. An empty path yields a disabled logger.
func Open(path, level string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return zerolog.Nop(), noop, nil
	}
	lvl := zerolog.DebugLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := zerolog.New(file).Level(lvl).With().Timestamp().Logger()
	return logger, file.Close, nil
}
