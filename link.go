package jobnotice

import "context"

// LinkDecision is the outcome class of validating a link.
type LinkDecision int

// Link decisions.
const (
	LinkAccepted LinkDecision = iota
	LinkRejectedByPolicy
	LinkRejectedByProbeFailure
)

// String returns a short name for the decision, used in logs.
func (d LinkDecision) String() string {
	switch d {
	case LinkAccepted:
		return "accepted"
	case LinkRejectedByPolicy:
		return "rejected"
	case LinkRejectedByProbeFailure:
		return "probe_failed"
	default:
		return "unknown"
	}
}

// LinkVerdict is the result of validating a link.
// Reason explains rejections and is empty for accepted links.
type LinkVerdict struct {
	Decision LinkDecision
	Reason   string
}

// Accepted reports whether the link may be kept.
func (v LinkVerdict) Accepted() bool {
	return v.Decision == LinkAccepted
}

// Accept returns an accepting verdict.
func Accept() LinkVerdict {
	return LinkVerdict{Decision: LinkAccepted}
}

// RejectByPolicy returns a verdict rejecting a link for the given reason.
func RejectByPolicy(reason string) LinkVerdict {
	return LinkVerdict{Decision: LinkRejectedByPolicy, Reason: reason}
}

// RejectByProbeFailure returns a verdict for a link whose probe failed.
func RejectByProbeFailure(reason string) LinkVerdict {
	return LinkVerdict{Decision: LinkRejectedByProbeFailure, Reason: reason}
}

// LinkValidator decides whether an extracted link is worth keeping.
type LinkValidator interface {
	// Validate never fails: any error during validation becomes a
	// rejecting verdict.
	Validate(ctx context.Context, url string) LinkVerdict
}

// ContentProber reports the content type a URL serves without downloading it.
type ContentProber interface {
	// ProbeContentType follows redirects and returns the final
	// Content-Type header value.
	ProbeContentType(ctx context.Context, url string) (string, error)
}
