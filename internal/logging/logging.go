// Package logging builds the ztrtag logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "ZTRTAG_LOG_LEVEL"

// New returns a console logger writing to w at level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		level = env
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "ztrtag").Logger(), nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "":
		return zerolog.InfoLevel, nil
	case "off", "none", "disabled":
		return zerolog.Disabled, nil
	default:
		lvl, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.NoLevel, fmt.Errorf("log level %q: %w", raw, err)
		}
		return lvl, nil
	}
}
