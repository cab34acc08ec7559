package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobnotice"
)

// Ensure LoggingExtractor implements jobnotice.Extractor.
var _ jobnotice.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   jobnotice.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobnotice.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the title and
// section count of the result.
func (e *LoggingExtractor) Extract(ctx context.Context, html string) (rec *jobnotice.Record, err error) {
	defer func(begin time.Time) {
		var title string
		var sections int
		if rec != nil {
			title = rec.Title
			sections = len(rec.Sections)
		}
		e.logger.Info("extract",
			"title", title,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html)
}
