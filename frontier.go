package jobnotice

import "context"

// URLSource discovers candidate notice page URLs from a listing page.
type URLSource interface {
	// Discover returns page URLs in listing order, without duplicates.
	Discover(ctx context.Context, listingURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
