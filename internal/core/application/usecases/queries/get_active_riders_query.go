package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveRidersQueryIsNotConstructed = errors.New(
	"GetActiveRidersQuery must be created via NewGetActiveRidersQuery constructor",
)

// GetActiveRidersQuery retrieves every active rider with their delivery
// zones, for the admin rider picker and the zone search fallback.
type GetActiveRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveRidersQuery creates a query to retrieve active riders.
func NewGetActiveRidersQuery() GetActiveRidersQuery {
	return GetActiveRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRidersQueryIsNotConstructed)
}

// RiderSummary is one rider row as shown in admin views: identity, vehicle,
// served zones and the lifetime delivery counter.
type RiderSummary struct {
	ID              int64
	Name            string
	Phone           string
	VehicleType     string
	VehicleNumber   string
	Zones           []string
	TotalDeliveries int
}
