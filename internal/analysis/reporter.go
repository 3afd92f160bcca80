package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Reporter is the error channel for failures the user should see
type Reporter interface {
	Report(ctx context.Context, message string)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(ctx context.Context, message string)

func (f ReporterFunc) Report(ctx context.Context, message string) {
	f(ctx, message)
}

// LogReporter reports through the default slog logger
type LogReporter struct{}

func (LogReporter) Report(ctx context.Context, message string) {
	slog.ErrorContext(ctx, message)
}

// WriterReporter writes one line per message, e.g. to a terminal's stderr
type WriterReporter struct {
	W io.Writer
}

func (r WriterReporter) Report(_ context.Context, message string) {
	if _, err := fmt.Fprintln(r.W, message); err != nil {
		slog.Error("Unable to write error message", "err", err)
	}
}
