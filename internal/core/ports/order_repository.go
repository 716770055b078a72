package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their embedded shipping record.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetBySecureID retrieves an order aggregate by its public identifier.
	// Used by customer-facing tracking where internal ids must not leak.
	GetBySecureID(ctx context.Context, secureID kernel.SecureID) (*order.Order, error)

	// GetAllShipped retrieves every order currently in the Shipped status.
	// Used by the delivery completion job to reconcile orders whose
	// assignment has already been delivered.
	GetAllShipped(ctx context.Context) ([]*order.Order, error)
}
