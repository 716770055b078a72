package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/rider"
)

// RiderMatcher is a pure domain service that filters a rider snapshot by
// delivery location.
//
// Matching is case-insensitive substring containment over each rider's
// zone labels: a rider whose zone "Dhaka North" contains the location
// "dhaka" matches. A blank location matches everyone, so the admin view
// can fall back to the full list when the search box is empty.
//
// The matcher is the local counterpart of the server-side zone search: the
// queries layer uses it when the repository search is unavailable, and the
// shipping flow uses it to narrow the rider dropdown.
type RiderMatcher struct{}

// NewRiderMatcher creates a new RiderMatcher instance.
func NewRiderMatcher() RiderMatcher {
	return RiderMatcher{}
}

// Match returns the riders serving the given location, preserving the
// order of the input snapshot. A blank (or whitespace-only) location
// returns the snapshot unchanged.
func (m RiderMatcher) Match(riders []*rider.Rider, location string) []*rider.Rider {
	if strings.TrimSpace(location) == "" {
		return riders
	}

	matched := make([]*rider.Rider, 0, len(riders))
	for _, r := range riders {
		if r == nil {
			continue
		}
		if r.ServesZone(location) {
			matched = append(matched, r)
		}
	}
	return matched
}
