package jobnotice

import (
	"context"
	"regexp"
)

// SitemapService discovers notice URLs from the source site's sitemaps.
// It is an alternative to scanning a listing page.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap.
	// It first checks robots.txt for sitemap directives, then falls back
	// to /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// If filter is nil, all URLs are returned.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects discovered URLs. When Include is set a URL must match
// one of its patterns; a URL matching any Exclude pattern is dropped.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// ListingExclude matches pagination and category links, which point at more
// listing pages rather than notices.
var ListingExclude = regexp.MustCompile(`page|category`)

// Match reports whether url passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
