package jobnotice

import "strings"

// Section labels assigned by the content classifier and the table extractor.
const (
	LabelImportantDates   = "Important Dates"
	LabelApplicationFee   = "Application Fee"
	LabelPaymentMode      = "Payment Mode"
	LabelAgeLimit         = "Age Limit"
	LabelSelectionProcess = "Selection Process"
	LabelImportantLinks   = "Important Links"
	LabelVacancyDetails   = "Vacancy Details"
)

// noiseLabels are headings that never make a useful section on their own.
var noiseLabels = []string{"Details", "Additional Information"}

// ClassificationKind tags the outcome of classifying a section.
type ClassificationKind int

const (
	// NeedsHeadingFallback means the content matched no rule and the label
	// must come from a nearby heading.
	NeedsHeadingFallback ClassificationKind = iota
	// Classified means Label holds a usable section title.
	Classified
	// Noise means the section should be discarded.
	Noise
)

// Classification is the result of labelling a section.
type Classification struct {
	Kind  ClassificationKind
	Label string
}

// OK reports whether the classification produced a usable label.
func (c Classification) OK() bool {
	return c.Kind == Classified
}

// classifyRule maps a predicate over the lowercased content blob to a label.
type classifyRule struct {
	match func(blob string) bool
	label string
}

// classifyRules are evaluated in order; the first match wins.
var classifyRules = []classifyRule{
	{
		match: func(b string) bool { return containsAny(b, "start date", "last date", "exam date") },
		label: LabelImportantDates,
	},
	{
		match: func(b string) bool {
			fee := strings.Contains(b, "₹") || (strings.Contains(b, "general") && strings.Contains(b, "obc"))
			return fee && !strings.Contains(b, "payment")
		},
		label: LabelApplicationFee,
	},
	{
		match: func(b string) bool { return containsAny(b, "debit card", "credit card") },
		label: LabelPaymentMode,
	},
	{
		match: func(b string) bool { return containsAny(b, "minimum age", "maximum age") },
		label: LabelAgeLimit,
	},
	{
		match: func(b string) bool { return containsAny(b, "written exam", "interview") },
		label: LabelSelectionProcess,
	},
}

// Classify labels a bag of extracted items by their content.
func Classify(items []string) Classification {
	blob := strings.ToLower(strings.Join(items, " "))
	for _, rule := range classifyRules {
		if rule.match(blob) {
			return Classification{Kind: Classified, Label: rule.label}
		}
	}
	return Classification{Kind: NeedsHeadingFallback}
}

// ClassifyHeading turns heading text into a label, or Noise when the
// heading is empty or generic.
func ClassifyHeading(text string) Classification {
	if text == "" {
		return Classification{Kind: Noise}
	}
	for _, noise := range noiseLabels {
		if strings.EqualFold(text, noise) {
			return Classification{Kind: Noise}
		}
	}
	return Classification{Kind: Classified, Label: text}
}
