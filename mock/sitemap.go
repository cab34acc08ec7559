package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of jobnotice.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *jobnotice.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *jobnotice.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
