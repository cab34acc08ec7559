package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/jobnotice"
)

// Ensure SitemapService implements jobnotice.SitemapService.
var _ jobnotice.SitemapService = (*SitemapService)(nil)

// SitemapService discovers notice URLs from a site's sitemaps.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService.
func NewSitemapService(opts ...Option) *SitemapService {
	c := newConfig(DefaultFetchTimeout, opts)
	return &SitemapService{client: c.client, userAgent: c.userAgent}
}

// sitemapEntry is one <url> of a urlset.
type sitemapEntry struct {
	loc     string
	lastmod time.Time
}

// DiscoverURLs returns every URL listed in the sitemaps of baseURL's host,
// most recently modified first. Entries without lastmod keep their
// document order after the dated ones. Returns an empty slice (not nil)
// if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *jobnotice.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, jobnotice.Errorf(jobnotice.EINVALID, "invalid base URL %q", baseURL)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemapURLs, err := s.findSitemapURLs(ctx, root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	var entries []sitemapEntry
	seenSitemaps := make(map[string]bool)
	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].lastmod.After(entries[j].lastmod)
	})

	urls := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.loc] || !filter.Match(e.loc) {
			continue
		}
		seen[e.loc] = true
		urls = append(urls, e.loc)
	}
	return urls, nil
}

// findSitemapURLs reads Sitemap: directives from robots.txt, falling back
// to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}
	return nil, nil
}

func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), directive) {
			if u := strings.TrimSpace(line[len(directive):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// processSitemap handles both <urlset> and <sitemapindex> documents.
// Nested indexes are followed once each.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]sitemapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, jobnotice.Errorf(jobnotice.EPARSE, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, jobnotice.Errorf(jobnotice.EPARSE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return parseURLSet(root), nil
	}

	var entries []sitemapEntry
	for _, child := range root.SelectElements("sitemap") {
		loc := elementText(child, "loc")
		if loc == "" {
			continue
		}
		found, err := s.processSitemap(ctx, loc, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

func parseURLSet(root *etree.Element) []sitemapEntry {
	var entries []sitemapEntry
	for _, el := range root.SelectElements("url") {
		loc := elementText(el, "loc")
		if loc == "" {
			continue
		}
		entries = append(entries, sitemapEntry{
			loc:     loc,
			lastmod: parseLastmod(elementText(el, "lastmod")),
		})
	}
	return entries
}

func elementText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// parseLastmod accepts the W3C datetime forms sitemaps use. Unparseable
// values yield the zero time.
func parseLastmod(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, jobnotice.Errorf(jobnotice.EFETCH, "HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) urlExists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
