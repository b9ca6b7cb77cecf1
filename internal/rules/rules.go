// Package rules holds the stateless business invariants: the per-specialty
// doctor cap and the appointment conflict window. Both are pure predicates;
// the services feed them counts and timestamps from the store.
package rules

import (
	"strings"
	"time"
)

// MaxSpecialistsPerHospital caps how many doctors of one specialty a single
// hospital may employ.
const MaxSpecialistsPerHospital = 10

// ConflictWindow is the interval either side of "now" within which a second
// booking with the same doctor is rejected.
const ConflictWindow = 7 * 24 * time.Hour

// SpecialtyMatches compares specialties case-insensitively.
func SpecialtyMatches(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ExceedsSpecialtyCap reports whether adding one more doctor on top of
// matchingCount would break the cap. matchingCount must already exclude the
// doctor being updated, if any.
func ExceedsSpecialtyCap(matchingCount int) bool {
	return matchingCount >= MaxSpecialistsPerHospital
}

// InConflictWindow reports whether an existing appointment's date falls
// inside [now-7d, now] or [now, now+7d]. The window is anchored to now, the
// instant of the check, not to the date being booked; a proposed date plays
// no part in the comparison. Boundaries are inclusive.
func InConflictWindow(existing, now time.Time) bool {
	weekAgo := now.Add(-ConflictWindow)
	weekAhead := now.Add(ConflictWindow)

	if !existing.Before(weekAgo) && !existing.After(now) {
		return true
	}

	return !existing.Before(now) && !existing.After(weekAhead)
}
