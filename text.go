package jobnotice

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// brandingRe matches the aggregator's brand name with its optional suffix
// word and top-level-domain-like tail.
var brandingRe = regexp.MustCompile(`(?i)(service\s*)?sarkari\s*(result|service|naukri)?(\.com|\.cm|\.im|\.co)?`)

// brandingSeparators are trimmed from both ends after the brand is removed.
const brandingSeparators = " -|"

// NormalizeWhitespace collapses runs of whitespace into a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripBranding removes the aggregator's branding from s and the separators
// left dangling around it.
//
//	StripBranding("Sarkari Result - SSC CGL 2024") == "SSC CGL 2024"
func StripBranding(s string) string {
	if s == "" {
		return ""
	}
	s = brandingRe.ReplaceAllString(s, "")
	s = NormalizeWhitespace(s)
	s = strings.Trim(s, brandingSeparators)
	return NormalizeWhitespace(s)
}

// DedupItems removes case-insensitive duplicates, keeping the first
// occurrence's casing and the original order.
func DedupItems(items []string) []string {
	if items == nil {
		return nil
	}

	fold := cases.Fold()
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := fold.String(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
