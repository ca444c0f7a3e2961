package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/rs/zerolog"
)

// newLogger builds the process logger from the log section.
func newLogger(cfg config.LogCfg, out io.Writer) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("service", "imgcache").Logger()
	return &logger, nil
}
