// Package trial computes the free-tier trial window. All functions take the
// clock as an explicit argument; nothing here reads wall time, so results are
// deterministic and property-testable across arbitrary clock values.
package trial

import "time"

// FreeTrialDays is the length of the free-tier trial window in whole days.
const FreeTrialDays = 30

// State is the derived trial position for an organization.
type State struct {
	DaysRemaining int  `json:"days_remaining"`
	Expired       bool `json:"expired"`
}

// Compute derives the trial state from the recorded trial start.
//
// A nil start means the organization predates trial tracking (or the field
// was never populated); it is treated as a trial that just started, never as
// an expired one. Missing data must not retroactively lock anyone out.
// Elapsed time counts whole days (floor); a start in the future counts as
// zero elapsed days.
func Compute(startedAt *time.Time, now time.Time) State {
	if startedAt == nil {
		return State{DaysRemaining: FreeTrialDays, Expired: false}
	}

	elapsedDays := int(now.Sub(*startedAt) / (24 * time.Hour))
	if elapsedDays < 0 {
		elapsedDays = 0
	}

	remaining := FreeTrialDays - elapsedDays
	if remaining < 0 {
		remaining = 0
	}

	return State{
		DaysRemaining: remaining,
		Expired:       remaining <= 0,
	}
}
