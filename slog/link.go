package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobnotice"
)

// Ensure LoggingLinkValidator implements jobnotice.LinkValidator.
var _ jobnotice.LinkValidator = (*LoggingLinkValidator)(nil)

// LoggingLinkValidator wraps a LinkValidator and logs every verdict.
// Accepted links are logged at debug level, rejections at info.
type LoggingLinkValidator struct {
	next   jobnotice.LinkValidator
	logger *slog.Logger
}

// NewLoggingLinkValidator creates a new LoggingLinkValidator.
func NewLoggingLinkValidator(next jobnotice.LinkValidator, logger *slog.Logger) *LoggingLinkValidator {
	return &LoggingLinkValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs the verdict.
func (v *LoggingLinkValidator) Validate(ctx context.Context, url string) jobnotice.LinkVerdict {
	begin := time.Now()
	verdict := v.next.Validate(ctx, url)

	level := slog.LevelInfo
	if verdict.Accepted() {
		level = slog.LevelDebug
	}
	v.logger.Log(ctx, level, "link",
		"url", url,
		"decision", verdict.Decision.String(),
		"reason", verdict.Reason,
		"duration", time.Since(begin),
	)
	return verdict
}
