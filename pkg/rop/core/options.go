package core

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ib-77/nullchain/pkg/rop"
)

type OptionKey string

const (
	DiagnosticsOptionKey OptionKey = "diagnostics_options"
)

type DiagnosticsOptions struct {
	Logger logrus.FieldLogger
}

// WithDiagnostics attaches a logger that receives the diagnostics of chains
// resolved with ctx, regardless of the global logging switch. A nil logger,
// typed or not, silences diagnostics for ctx.
func WithDiagnostics(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, DiagnosticsOptionKey, DiagnosticsOptions{Logger: logger})
}

// DiagnosticsLogger returns the logger attached to ctx, or fallback when ctx
// carries no diagnostics options.
func DiagnosticsLogger(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	options, ok := ctx.Value(DiagnosticsOptionKey).(DiagnosticsOptions)
	if ok {
		if rop.IsNil(options.Logger) {
			return nil
		}
		return options.Logger
	}
	if rop.IsNil(fallback) {
		return nil
	}
	return fallback
}

// ActiveLogger resolves the logger for ctx: a context option wins, then the
// global logger when logging is enabled. It returns nil when diagnostics are off.
func ActiveLogger(ctx context.Context, s Settings) logrus.FieldLogger {
	var fallback logrus.FieldLogger
	if s.LoggingEnabled() {
		fallback = s.Logger()
	}
	return DiagnosticsLogger(ctx, fallback)
}
