package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// NextID reserves the next assignment identifier from the storage
	// sequence. Assignments are the only aggregate created inside this
	// service, so id generation lives here rather than at the storefront.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its internal identifier.
	// Returns errs.ObjectNotFoundError when no such assignment exists.
	Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error)

	// GetByOrderID retrieves the current (most recent non-cancelled)
	// assignment for the given order. Returns errs.ObjectNotFoundError
	// when the order has never been assigned.
	GetByOrderID(ctx context.Context, orderID kernel.ID) (*assignment.Assignment, error)

	// GetAllDelivered retrieves assignments in the delivered status whose
	// parent order has not reached Delivered yet. Consumed by the delivery
	// completion job.
	GetAllDelivered(ctx context.Context) ([]*assignment.Assignment, error)
}
