// Package logging builds the structured stderr logger and carries it
// through context.Context.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
)

// New creates a logger writing to w. Debug output is enabled by cfg.Debug,
// otherwise only warnings and errors are written.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter(cfg.LogFormat),
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          config.AppName,
	})
}

func formatter(name string) log.Formatter {
	switch name {
	case config.LogFormatJSON:
		return log.JSONFormatter
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext returns the logger carried by ctx, or the package default
// logger if there is none.
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
