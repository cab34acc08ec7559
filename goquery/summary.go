package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
	"golang.org/x/net/html"
)

var (
	summaryStartRe = regexp.MustCompile(`(?i)(Short Information|Short Details)\s*[:\-]`)
	summaryEndRe   = regexp.MustCompile(`(?i)(Important Dates|Application Fee|Notification)`)
)

// textSeparator joins text nodes when flattening the container.
const textSeparator = " | "

// minSummaryParagraphLen is the rune length a paragraph must exceed to be
// used as a fallback summary.
const minSummaryParagraphLen = 60

// summaryParagraphExclusions disqualify a paragraph from being the summary.
var summaryParagraphExclusions = []string{"post date", "click here"}

// extractSummary returns the notice's short description. The text between
// the "Short Information" marker and the first section marker is preferred;
// otherwise the first long descriptive paragraph is used.
func extractSummary(container *goquery.Selection) string {
	if s, ok := markedSummary(flattenText(container)); ok {
		return s
	}
	return paragraphSummary(container)
}

func markedSummary(text string) (string, bool) {
	start := summaryStartRe.FindStringIndex(text)
	end := summaryEndRe.FindStringIndex(text)
	if start == nil || end == nil || end[0] <= start[1] {
		return "", false
	}
	s := jobnotice.StripBranding(text[start[1]:end[0]])
	s = strings.ReplaceAll(s, "|", "")
	return jobnotice.NormalizeWhitespace(s), true
}

func paragraphSummary(container *goquery.Selection) string {
	for _, p := range findAll(container, "p") {
		text := cleanText(p)
		if utf8.RuneCountInString(text) <= minSummaryParagraphLen {
			continue
		}
		lower := strings.ToLower(text)
		excluded := false
		for _, term := range summaryParagraphExclusions {
			if strings.Contains(lower, term) {
				excluded = true
				break
			}
		}
		if !excluded {
			return jobnotice.StripBranding(text)
		}
	}
	return ""
}

// flattenText joins the trimmed, non-empty text nodes under sel with
// textSeparator. Script and style contents are skipped.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, textSeparator)
}
