package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/jobnotice"
)

// DefaultProbeTimeout bounds a single content-type probe.
const DefaultProbeTimeout = 3 * time.Second

var _ jobnotice.ContentProber = (*Prober)(nil)

// Prober issues HEAD requests to learn what a link serves.
type Prober struct {
	client    *http.Client
	userAgent string
}

// NewProber creates a Prober. Redirects are followed by the client.
func NewProber(opts ...Option) *Prober {
	c := newConfig(DefaultProbeTimeout, opts)
	return &Prober{client: c.client, userAgent: c.userAgent}
}

// ProbeContentType returns the Content-Type of the final response.
// The status code is not checked.
func (p *Prober) ProbeContentType(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	resp.Body.Close()

	return resp.Header.Get("Content-Type"), nil
}
