package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/andrescamacho/factory-planner-go/internal/infrastructure/config"
)

// NewLogger builds a slog.Logger from the logging configuration.
// stdout and stderr are the writers behind the "stdout" and "stderr" outputs.
func NewLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer
	switch cfg.Output {
	case "stdout":
		out = stdout
	case "stderr", "":
		out = stderr
	default:
		return nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
