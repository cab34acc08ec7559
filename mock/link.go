package mock

import (
	"context"

	"github.com/fwojciec/jobnotice"
)

var _ jobnotice.LinkValidator = (*LinkValidator)(nil)

// LinkValidator is a mock implementation of jobnotice.LinkValidator.
type LinkValidator struct {
	ValidateFn func(ctx context.Context, url string) jobnotice.LinkVerdict
}

func (v *LinkValidator) Validate(ctx context.Context, url string) jobnotice.LinkVerdict {
	return v.ValidateFn(ctx, url)
}

var _ jobnotice.ContentProber = (*ContentProber)(nil)

// ContentProber is a mock implementation of jobnotice.ContentProber.
type ContentProber struct {
	ProbeContentTypeFn func(ctx context.Context, url string) (string, error)
}

func (p *ContentProber) ProbeContentType(ctx context.Context, url string) (string, error) {
	return p.ProbeContentTypeFn(ctx, url)
}
