// Package http provides net/http implementations of the jobnotice fetch,
// probe, and sitemap collaborators.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jobnotice"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a desktop browser identity. The source site serves
// reduced markup to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// maxBodySize caps how much of a page is read.
const maxBodySize = 8 << 20

// Ensure Fetcher implements jobnotice.Fetcher at compile time.
var _ jobnotice.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves notice and listing pages with plain GET requests.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher or a Prober.
type Option func(*config)

type config struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithClient uses client instead of a fresh http.Client. The client's
// timeout is replaced by the configured one.
func WithClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

func newConfig(timeout time.Duration, opts []Option) config {
	c := config{timeout: timeout, userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	} else {
		clone := *c.client
		c.client = &clone
	}
	c.client.Timeout = c.timeout
	return c
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	c := newConfig(DefaultFetchTimeout, opts)
	return &Fetcher{
		client:    c.client,
		userAgent: c.userAgent,
	}
}

// Fetch retrieves the body of url. Transport failures and non-200
// responses are reported as EFETCH errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", jobnotice.Errorf(jobnotice.EFETCH, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", jobnotice.Errorf(jobnotice.EFETCH, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", jobnotice.Errorf(jobnotice.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", jobnotice.Errorf(jobnotice.EFETCH, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}
