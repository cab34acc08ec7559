package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobnotice"
)

// maxHeadingLen is the rune length below which a preceding element's text
// is accepted as a list heading.
const maxHeadingLen = 50

// headingTags are the elements whose text may title the list that follows.
var headingTags = []string{"h2", "h3", "h4", "h5", "p"}

// extractLists adds a list section for each classifiable <ul> in container.
func extractLists(container *goquery.Selection, sections *sectionSet) {
	for _, ul := range findAll(container, "ul") {
		items := listItems(ul)
		if len(items) == 0 {
			continue
		}

		c := jobnotice.Classify(items)
		if c.Kind == jobnotice.NeedsHeadingFallback {
			c = headingClassification(ul)
		}
		if !c.OK() {
			continue
		}

		sections.Add(jobnotice.Section{
			Title: c.Label,
			Kind:  jobnotice.SectionList,
			Items: jobnotice.DedupItems(items),
		})
	}
}

func listItems(ul *goquery.Selection) []string {
	var items []string
	for _, li := range findAll(ul, "li") {
		if text := strippedText(li); text != "" {
			items = append(items, text)
		}
	}
	return items
}

// headingClassification labels a list from the element right before it.
func headingClassification(ul *goquery.Selection) jobnotice.Classification {
	prev := previousElement(ul)
	if !isTag(prev, headingTags...) {
		return jobnotice.Classification{Kind: jobnotice.Noise}
	}
	text := strippedText(prev)
	if utf8.RuneCountInString(text) >= maxHeadingLen {
		return jobnotice.Classification{Kind: jobnotice.Noise}
	}
	return jobnotice.ClassifyHeading(text)
}
