package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// OrderStatusChangedEvent is the integration event emitted after an order
// status transition has been committed. Downstream consumers (customer
// notifications, analytics) key on the public secure id.
type OrderStatusChangedEvent struct {
	OrderID    kernel.ID
	SecureID   kernel.SecureID
	FromStatus string
	ToStatus   string
	OccurredAt time.Time
}

// EventPublisher publishes integration events to the message broker.
// Publishing happens after the owning transaction commits: a failed
// publish is logged, never rolled back into the business operation.
type EventPublisher interface {
	// PublishOrderStatusChanged emits a status-changed event for an order.
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
