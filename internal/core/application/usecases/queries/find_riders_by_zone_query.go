package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrFindRidersByZoneQueryIsNotConstructed = errors.New(
	"FindRidersByZoneQuery must be created via NewFindRidersByZoneQuery constructor",
)

// Result sources for the zone search.
const (
	// SourceServer marks a result produced by the repository zone search.
	SourceServer = "server"
	// SourceLocalFallback marks a result produced by filtering the active
	// rider snapshot locally after the repository search failed.
	SourceLocalFallback = "local-fallback"
)

// FindRidersByZoneQuery searches active riders serving a delivery location.
// A blank location is a valid query and returns every active rider.
//
// Example:
//
//	query, _ := NewFindRidersByZoneQuery("dhanmondi")
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if result.NoRidersFound {
//	    fmt.Println("no riders serve this zone")
//	}
type FindRidersByZoneQuery struct { //nolint:recvcheck //using for validation
	location string

	guard guard.ConstructorGuard
}

// NewFindRidersByZoneQuery creates a zone search query for the location.
func NewFindRidersByZoneQuery(location string) (FindRidersByZoneQuery, error) {
	return FindRidersByZoneQuery{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindRidersByZoneQuery) Validate() error {
	return q.guard.Validate(ErrFindRidersByZoneQueryIsNotConstructed)
}

// Location returns the searched delivery location.
func (q FindRidersByZoneQuery) Location() string {
	return q.location
}

// FindRidersByZoneResult is the zone search outcome. NoRidersFound is an
// ordinary empty result, distinct from a search error; Source records
// whether the rows came from the repository search or the local fallback.
type FindRidersByZoneResult struct {
	Riders        []RiderSummary
	Source        string
	NoRidersFound bool
}
