package crawl

import (
	"context"
	"regexp"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.URLSource = (*SitemapSource)(nil)

// SitemapSource discovers notice pages from the listing site's sitemaps
// instead of the listing markup. Pagination and category URLs are dropped
// the same way the listing scanner drops them.
type SitemapSource struct {
	Sitemaps jobnotice.SitemapService
	Include  []*regexp.Regexp
}

// Discover returns the sitemap URLs of the listing URL's host.
func (s *SitemapSource) Discover(ctx context.Context, listingURL string) ([]string, error) {
	filter := &jobnotice.URLFilter{
		Include: s.Include,
		Exclude: []*regexp.Regexp{jobnotice.ListingExclude},
	}
	return s.Sitemaps.DiscoverURLs(ctx, listingURL, filter)
}
