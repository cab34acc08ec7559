// Package linkcheck decides which links extracted from a notice page are
// worth keeping.
package linkcheck

import (
	"context"
	"strings"

	"github.com/fwojciec/jobnotice"
)

// Ensure Validator implements jobnotice.LinkValidator at compile time.
var _ jobnotice.LinkValidator = (*Validator)(nil)

// DefaultBlockedTerms are substrings identifying social and chat links.
var DefaultBlockedTerms = []string{"telegram", "whatsapp", "facebook", "instagram", "youtube", "channel"}

// DefaultTrustedTerms identify government domains, accepted without probing.
var DefaultTrustedTerms = []string{"gov.in", "nic.in"}

// DefaultSiteMarker identifies links pointing back at the source site.
const DefaultSiteMarker = "sarkari"

// DefaultDocumentExtensions are the file types a source-site link must point at.
var DefaultDocumentExtensions = []string{".pdf", ".jpg", ".doc", ".docx"}

// Validator applies the link policy: blocked terms, trusted domains, and
// document checks for links back to the source site.
type Validator struct {
	prober     jobnotice.ContentProber
	blocked    []string
	trusted    []string
	siteMarker string
	extensions []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithSiteMarker sets the substring identifying source-site links.
func WithSiteMarker(marker string) Option {
	return func(v *Validator) {
		v.siteMarker = strings.ToLower(marker)
	}
}

// WithBlockedTerms replaces the blocked term list.
func WithBlockedTerms(terms ...string) Option {
	return func(v *Validator) {
		v.blocked = lowerAll(terms)
	}
}

// WithTrustedTerms replaces the trusted domain list.
func WithTrustedTerms(terms ...string) Option {
	return func(v *Validator) {
		v.trusted = lowerAll(terms)
	}
}

// NewValidator creates a Validator that probes source-site links with prober.
func NewValidator(prober jobnotice.ContentProber, opts ...Option) *Validator {
	v := &Validator{
		prober:     prober,
		blocked:    DefaultBlockedTerms,
		trusted:    DefaultTrustedTerms,
		siteMarker: DefaultSiteMarker,
		extensions: DefaultDocumentExtensions,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns the verdict for url. Probe errors become
// LinkRejectedByProbeFailure verdicts.
func (v *Validator) Validate(ctx context.Context, url string) jobnotice.LinkVerdict {
	if url == "" {
		return jobnotice.RejectByPolicy("empty url")
	}

	lower := strings.ToLower(url)

	if term, ok := firstContained(lower, v.blocked); ok {
		return jobnotice.RejectByPolicy("blocked term " + term)
	}
	if _, ok := firstContained(lower, v.trusted); ok {
		return jobnotice.Accept()
	}
	if v.siteMarker == "" || !strings.Contains(lower, v.siteMarker) {
		return jobnotice.Accept()
	}

	if !v.isDocument(lower) {
		return jobnotice.RejectByPolicy("source site link is not a document")
	}

	contentType, err := v.prober.ProbeContentType(ctx, url)
	if err != nil {
		return jobnotice.RejectByProbeFailure(err.Error())
	}
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return jobnotice.RejectByPolicy("document link serves html")
	}
	return jobnotice.Accept()
}

// isDocument reports whether the lowercased url ends in one of the document
// extensions. A trailing query or fragment disqualifies the link.
func (v *Validator) isDocument(lower string) bool {
	for _, ext := range v.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func firstContained(s string, terms []string) (string, bool) {
	for _, term := range terms {
		if term != "" && strings.Contains(s, term) {
			return term, true
		}
	}
	return "", false
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
