// Package bloom remembers which notice page URLs a scrape has already queued.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter is a probabilistic set of page URLs.
// A false positive drops a page from the current run; it is picked up by
// the next run because the record store, not the filter, is authoritative.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether url was recorded before and records it.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(key(url))
}

// Count returns the approximate number of URLs recorded.
func (f *Filter) Count() uint {
	return uint(f.f.ApproximatedSize())
}

// key collapses the variants of one page URL: the fragment and a trailing
// slash are ignored.
func key(url string) string {
	url, _, _ = strings.Cut(url, "#")
	return strings.TrimSuffix(url, "/")
}
