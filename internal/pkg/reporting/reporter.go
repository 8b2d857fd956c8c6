// Package reporting forwards unexpected errors to the observability sink.
package reporting

import (
	"context"

	"github.com/rs/zerolog"
)

// Reporter receives errors that were answered with an opaque 500
type Reporter interface {
	Report(ctx context.Context, err error, msg string)
}

// LogReporter reports errors as structured log events. The request-scoped
// logger in ctx is preferred so events carry the request ID.
type LogReporter struct {
	fallback zerolog.Logger
}

// NewLogReporter creates a LogReporter
func NewLogReporter(fallback zerolog.Logger) *LogReporter {
	return &LogReporter{fallback: fallback}
}

// Report logs err at error level
func (r *LogReporter) Report(ctx context.Context, err error, msg string) {
	lgr := zerolog.Ctx(ctx)
	if lgr.GetLevel() == zerolog.Disabled {
		lgr = &r.fallback
	}
	lgr.Error().Err(err).Bool("reported", true).Msg(msg)
}
