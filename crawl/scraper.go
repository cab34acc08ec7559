// Package crawl drives a scrape: it discovers notice pages from listing
// pages, fetches and extracts each one, and persists the records that are
// not stored yet.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/bloom"
)

// Bloom filter sizing for cross-listing page dedup.
const (
	expectedPages = 10000
	falsePositive = 0.001
)

// Result contains the outcome counts of a scrape.
type Result struct {
	Discovered int
	Saved      int
	Exists     int
	Empty      int
	Failed     int
}

// ProgressType identifies the kind of progress event.
type ProgressType int

const (
	// ProgressStarted is emitted once the pages to process are known.
	ProgressStarted ProgressType = iota
	// ProgressSaved is emitted when a new record was stored.
	ProgressSaved
	// ProgressExists is emitted when a record with the same title is already stored.
	ProgressExists
	// ProgressEmpty is emitted when a page produced no sections.
	ProgressEmpty
	// ProgressFailed is emitted when a listing or page could not be processed.
	ProgressFailed
	// ProgressFinished is emitted after all pages have been processed.
	ProgressFinished
)

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressFunc is called to report scrape progress.
type ProgressFunc func(ProgressEvent)

// Scraper processes notice pages one at a time.
type Scraper struct {
	Source      jobnotice.URLSource
	Fetcher     jobnotice.Fetcher
	Extractor   jobnotice.Extractor
	Records     jobnotice.RecordService
	RateLimiter jobnotice.DomainLimiter

	// RetryDelays are the waits between fetch attempts. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// RetryLog is called before each retry. Optional.
	RetryLog LogFunc

	// Limit caps the number of pages processed. Zero means no limit.
	Limit int
}

// Run discovers pages from each listing URL in order and processes them.
// Page-level failures are counted and reported, not returned. Run returns
// an error only if the context ends or no listing could be read.
func (s *Scraper) Run(ctx context.Context, listingURLs []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	pages, err := s.discover(ctx, listingURLs, progress)
	if err != nil {
		return nil, err
	}

	result := &Result{Discovered: len(pages)}
	progress(ProgressEvent{Type: ProgressStarted, Total: len(pages)})

	for i, pageURL := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event, err := s.process(ctx, pageURL)
		if err != nil {
			return result, err
		}
		event.Completed = i + 1
		event.Total = len(pages)

		switch event.Type {
		case ProgressSaved:
			result.Saved++
		case ProgressExists:
			result.Exists++
		case ProgressEmpty:
			result.Empty++
		case ProgressFailed:
			result.Failed++
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
	return result, nil
}

// discover merges the pages of all listings in first-seen order and applies
// the limit.
func (s *Scraper) discover(ctx context.Context, listingURLs []string, progress ProgressFunc) ([]string, error) {
	seen := bloom.NewFilter(expectedPages, falsePositive)

	var pages []string
	var lastErr error
	read := 0
	for _, listingURL := range listingURLs {
		found, err := s.Source.Discover(ctx, listingURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = err
			progress(ProgressEvent{Type: ProgressFailed, URL: listingURL, Error: err})
			continue
		}
		read++

		for _, pageURL := range found {
			if seen.Seen(pageURL) {
				continue
			}
			pages = append(pages, pageURL)
		}
	}

	if read == 0 && lastErr != nil {
		return nil, fmt.Errorf("discover pages: %w", lastErr)
	}

	if s.Limit > 0 && len(pages) > s.Limit {
		pages = pages[:s.Limit]
	}
	return pages, nil
}

// process handles one page and returns its outcome event. It returns an
// error only when the context has ended.
func (s *Scraper) process(ctx context.Context, pageURL string) (ProgressEvent, error) {
	failed := func(err error) (ProgressEvent, error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ProgressEvent{}, ctxErr
		}
		return ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err}, nil
	}

	if s.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
				return ProgressEvent{}, err
			}
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, s.RetryLog, delays)
	if err != nil {
		return failed(err)
	}

	rec, err := s.Extractor.Extract(ctx, html)
	if err != nil {
		return failed(err)
	}
	rec.SourceURL = pageURL

	if rec.Empty() {
		return ProgressEvent{
			Type:  ProgressEmpty,
			URL:   pageURL,
			Title: rec.Title,
			Error: jobnotice.Errorf(jobnotice.EEMPTY, "no sections extracted"),
		}, nil
	}

	existing, err := s.Records.FindRecordByTitle(ctx, rec.Title)
	switch {
	case err == nil && existing != nil:
		return ProgressEvent{Type: ProgressExists, URL: pageURL, Title: rec.Title}, nil
	case err != nil && jobnotice.ErrorCode(err) != jobnotice.ENOTFOUND:
		return failed(err)
	}

	if err := s.Records.CreateRecord(ctx, rec); err != nil {
		// Another writer stored the same title between the lookup and the insert.
		if jobnotice.ErrorCode(err) == jobnotice.ECONFLICT {
			return ProgressEvent{Type: ProgressExists, URL: pageURL, Title: rec.Title}, nil
		}
		return failed(err)
	}
	return ProgressEvent{Type: ProgressSaved, URL: pageURL, Title: rec.Title}, nil
}
