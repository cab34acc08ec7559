package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
)

// listingContainers are tried in order to find a listing page's post list.
var listingContainers = []string{"div.entry-content", "div.post-content", "body"}

// minLinkTextLen is the rune length a link's text must exceed for the link
// to count as a notice.
const minLinkTextLen = 10

// Ensure ListingScanner implements jobnotice.URLSource at compile time.
var _ jobnotice.URLSource = (*ListingScanner)(nil)

// ListingScanner discovers notice URLs by reading a listing page.
type ListingScanner struct {
	fetcher jobnotice.Fetcher
	filter  *jobnotice.URLFilter
}

// NewListingScanner creates a ListingScanner that fetches listing pages
// with fetcher. Pagination and category links are excluded.
func NewListingScanner(fetcher jobnotice.Fetcher) *ListingScanner {
	return &ListingScanner{
		fetcher: fetcher,
		filter:  &jobnotice.URLFilter{Exclude: []*regexp.Regexp{jobnotice.ListingExclude}},
	}
}

// Discover fetches listingURL and returns its notice links.
func (s *ListingScanner) Discover(ctx context.Context, listingURL string) ([]string, error) {
	html, err := s.fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	return ExtractListingLinks(html, listingURL, s.filter)
}

// ExtractListingLinks returns the same-host links in a listing page whose
// text is long enough to be a notice title and whose URL passes filter.
// Links keep first-seen order without duplicates.
func ExtractListingLinks(html string, listingURL string, filter *jobnotice.URLFilter) ([]string, error) {
	base, err := url.Parse(listingURL)
	if err != nil || base.Host == "" {
		return nil, jobnotice.Errorf(jobnotice.EINVALID, "invalid listing URL %q", listingURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobnotice.Errorf(jobnotice.EPARSE, "failed to parse HTML: %v", err)
	}

	container := firstMatch(doc.Selection, listingContainers...)
	if container.Length() == 0 {
		container = doc.Selection
	}

	seen := make(map[string]bool)
	var links []string
	for _, a := range findAll(container, "a[href]") {
		href, _ := a.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			continue
		}
		if utf8.RuneCountInString(cleanText(a)) <= minLinkTextLen {
			continue
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) || !filter.Match(resolved) {
			continue
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		links = append(links, resolved)
	}
	return links, nil
}

// resolveURL resolves href against base with the fragment stripped.
// Returns "" for unparseable hrefs and links back to base itself.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isSameHost reports whether resolved has exactly base's host.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
