package jobnotice

import "context"

// Extractor turns the raw markup of one notice page into a Record.
type Extractor interface {
	// Extract parses html and assembles a fully populated record.
	// Returns EPARSE if the markup cannot be parsed. The context bounds
	// any link probes performed while validating the page's links.
	Extract(ctx context.Context, html string) (*Record, error)
}
