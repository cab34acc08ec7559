package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
)

// firstMatch returns the first element matching the earliest selector in
// selectors that matches anything under sel. The result is empty when no
// selector matches.
func firstMatch(sel *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, s := range selectors {
		if m := sel.Find(s).First(); m.Length() > 0 {
			return m
		}
	}
	return sel.Slice(0, 0)
}

// previousElement returns the element sibling immediately before sel,
// skipping text and comments.
func previousElement(sel *goquery.Selection) *goquery.Selection {
	return sel.Prev()
}

// findAll returns each element under sel matching selector, in document order.
func findAll(sel *goquery.Selection, selector string) []*goquery.Selection {
	found := sel.Find(selector)
	out := make([]*goquery.Selection, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// cleanText returns the normalized text content of sel.
func cleanText(sel *goquery.Selection) string {
	return jobnotice.NormalizeWhitespace(sel.Text())
}

// strippedText returns the text content of sel with branding removed.
func strippedText(sel *goquery.Selection) string {
	return jobnotice.StripBranding(sel.Text())
}

// isTag reports whether sel's first node is an element with one of tags.
func isTag(sel *goquery.Selection, tags ...string) bool {
	if sel.Length() == 0 {
		return false
	}
	name := goquery.NodeName(sel)
	for _, tag := range tags {
		if name == tag {
			return true
		}
	}
	return false
}
