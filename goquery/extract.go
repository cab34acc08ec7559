// Package goquery implements the notice page extraction engine and the
// listing page scanner on top of goquery.
package goquery

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
)

// noticeContainers are tried in order to find a notice page's main content.
var noticeContainers = []string{"div.entry-content", "article", "body"}

// Ensure Extractor implements jobnotice.Extractor at compile time.
var _ jobnotice.Extractor = (*Extractor)(nil)

// Extractor assembles records from notice pages.
type Extractor struct {
	validator jobnotice.LinkValidator
	category  string
	now       func() time.Time
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithCategory sets the post category stamped on every record.
func WithCategory(category string) ExtractorOption {
	return func(e *Extractor) {
		e.category = category
	}
}

// WithClock sets the time source for PostDate and CreatedAt.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor that keeps only the links v accepts.
func NewExtractor(v jobnotice.LinkValidator, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		validator: v,
		category:  jobnotice.DefaultCategory,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses a notice page and assembles its record. A record with no
// sections is returned as is; callers decide whether to keep it.
func (e *Extractor) Extract(ctx context.Context, html string) (*jobnotice.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobnotice.Errorf(jobnotice.EPARSE, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)
	container := firstMatch(doc.Selection, noticeContainers...)
	if container.Length() == 0 {
		container = doc.Selection
	}

	sections := newSectionSet()
	extractLists(container, sections)
	if err := extractTables(ctx, container, e.validator, sections); err != nil {
		return nil, err
	}

	now := e.now()
	return &jobnotice.Record{
		Title:            title,
		NameOfPost:       title,
		PostCategory:     e.category,
		ShortInformation: extractSummary(container),
		Sections:         sections.List(),
		PostDate:         now,
		CreatedAt:        now,
	}, nil
}

// extractTitle returns the branding-stripped document title, or
// jobnotice.UnknownTitle when there is none left.
func extractTitle(doc *goquery.Document) string {
	title := jobnotice.StripBranding(doc.Find("title").First().Text())
	if title == "" {
		return jobnotice.UnknownTitle
	}
	return title
}
