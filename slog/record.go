package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobnotice"
)

// Ensure LoggingRecordService implements jobnotice.RecordService.
var _ jobnotice.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   jobnotice.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next jobnotice.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *jobnotice.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"title", rec.Title,
			"id", rec.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByTitle delegates to the wrapped service. A missing record is
// logged as found=false rather than as an error.
func (s *LoggingRecordService) FindRecordByTitle(ctx context.Context, title string) (rec *jobnotice.Record, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"title", title,
			"found", rec != nil,
			"duration", time.Since(begin),
		}
		if err != nil && jobnotice.ErrorCode(err) != jobnotice.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		s.logger.Debug("find record", attrs...)
	}(time.Now())
	return s.next.FindRecordByTitle(ctx, title)
}

// FindRecords delegates to the wrapped service and logs the result count.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter jobnotice.RecordFilter) (recs []*jobnotice.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}
