package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of jobnotice.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec *jobnotice.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *jobnotice.Record) error {
	return w.WriteRecordFn(ctx, rec)
}

var _ jobnotice.RecordFormatter = (*RecordFormatter)(nil)

// RecordFormatter is a mock implementation of jobnotice.RecordFormatter.
type RecordFormatter struct {
	FormatRecordFn func(rec *jobnotice.Record) (string, error)
}

func (f *RecordFormatter) FormatRecord(rec *jobnotice.Record) (string, error) {
	return f.FormatRecordFn(rec)
}
