package entitlement

import "time"

// OrganizationSnapshot is the minimal, read-only view of an organization the
// resolver needs. It deliberately carries the raw tier string: normalization
// happens inside the resolver so no caller can skip it.
type OrganizationSnapshot struct {
	RawTier        string
	Industry       string
	TrialStartedAt *time.Time
}
