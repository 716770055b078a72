// Package rider contains the Rider aggregate: a delivery courier profile
// with vehicle information, free-text delivery zones, an activity flag and
// a running delivery counter.
//
// Zones are free-text labels matched by case-insensitive substring
// containment, not geocoding; the zone set is kept free of duplicates at
// the point of addition rather than by storage.
package rider
