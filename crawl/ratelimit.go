package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/jobnotice"
	"golang.org/x/time/rate"
)

var _ jobnotice.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per host using token buckets with a burst
// of 1, so consecutive requests to one host are spaced by the interval.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
}

// NewDomainLimiter creates a limiter allowing one request per interval to
// each host. A non-positive interval disables pacing.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	every := rate.Inf
	if interval > 0 {
		every = rate.Every(interval)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    every,
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.every, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
