package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes generation events to an slog.Logger.
// Useful for development when you want to see run events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("category", event.Category.String()),
		slog.String("table", event.Table.String()),
	}

	if event.Version != "" {
		attrs = append(attrs, slog.String("version", event.Version))
	}
	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}

	switch {
	case event.Run != nil:
		attrs = append(attrs, slog.String("state", event.Run.State))
		if event.Run.Manifest != "" {
			attrs = append(attrs, slog.String("manifest", event.Run.Manifest))
		}
	case event.Build != nil:
		attrs = append(attrs,
			slog.Int("rows", event.Build.Rows),
			slog.Int("skipped", event.Build.Skipped),
			slog.Int("entries", event.Build.Entries),
		)
		if event.Build.Output != "" {
			attrs = append(attrs, slog.String("output", event.Build.Output))
		}
	case event.Row != nil:
		attrs = append(attrs,
			slog.Int("line", event.Row.Line),
			slog.String("fxy", event.Row.FXY),
		)
		if event.Row.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Row.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
		if event.Error.Line != 0 {
			attrs = append(attrs, slog.Int("line", event.Error.Line))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "tablegen", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
