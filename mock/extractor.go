package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobnotice.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html string) (*jobnotice.Record, error)
}

func (e *Extractor) Extract(ctx context.Context, html string) (*jobnotice.Record, error) {
	return e.ExtractFn(ctx, html)
}
