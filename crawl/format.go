package crawl

import (
	"fmt"
	"unicode/utf8"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// TruncateTitle shortens a record title for display, keeping the start.
// It counts runes so multi-byte titles are never split mid-character.
func TruncateTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(title) <= maxLen {
		return title
	}
	runes := []rune(title)
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// String summarizes the outcome counts on one line.
func (r *Result) String() string {
	return fmt.Sprintf("%d saved, %d already stored, %d empty, %d failed (of %d)",
		r.Saved, r.Exists, r.Empty, r.Failed, r.Discovered)
}
