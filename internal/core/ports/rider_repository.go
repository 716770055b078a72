// Package ports defines the driven-side interfaces of the fulfillment core:
// repositories for the three aggregates, the unit-of-work transaction
// boundary, and the event publisher. These contracts keep the domain and
// application layers independent of gorm, Kafka and the rest of the
// infrastructure.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates,
// including the zone search that backs the admin rider lookup.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// The rider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate, including
	// its zone set and delivery counter.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its internal identifier.
	// Returns errs.ObjectNotFoundError when no such rider exists.
	Get(ctx context.Context, id kernel.ID) (*rider.Rider, error)

	// GetByUserID retrieves the rider aggregate bound to the given user
	// account. Rider-side endpoints resolve the caller through this.
	GetByUserID(ctx context.Context, userID kernel.ID) (*rider.Rider, error)

	// GetAllActive retrieves every active rider with their zones. This is
	// the snapshot the shipping validator and the local zone fallback
	// operate on.
	GetAllActive(ctx context.Context) ([]*rider.Rider, error)

	// FindByZone retrieves active riders whose zone labels contain the
	// given location, case-insensitively. An empty location behaves like
	// GetAllActive.
	FindByZone(ctx context.Context, location string) ([]*rider.Rider, error)
}
