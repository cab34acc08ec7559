package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of jobnotice.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, listingURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, listingURL string) ([]string, error) {
	return s.DiscoverFn(ctx, listingURL)
}

var _ jobnotice.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobnotice.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
