package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of jobnotice.RecordService.
type RecordService struct {
	CreateRecordFn      func(ctx context.Context, rec *jobnotice.Record) error
	FindRecordByTitleFn func(ctx context.Context, title string) (*jobnotice.Record, error)
	FindRecordsFn       func(ctx context.Context, filter jobnotice.RecordFilter) ([]*jobnotice.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *jobnotice.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByTitle(ctx context.Context, title string) (*jobnotice.Record, error) {
	return s.FindRecordByTitleFn(ctx, title)
}

func (s *RecordService) FindRecords(ctx context.Context, filter jobnotice.RecordFilter) ([]*jobnotice.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
