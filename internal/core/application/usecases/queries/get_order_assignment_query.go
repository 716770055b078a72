package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderAssignmentQueryIsNotConstructed = errors.New(
	"GetOrderAssignmentQuery must be created via NewGetOrderAssignmentQuery constructor",
)

// GetOrderAssignmentQuery retrieves the current delivery assignment of an
// order, with the bound rider's display data.
type GetOrderAssignmentQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderAssignmentQuery creates an assignment lookup for the order.
func NewGetOrderAssignmentQuery(orderID kernel.ID) (GetOrderAssignmentQuery, error) {
	query := GetOrderAssignmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderAssignmentQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAssignmentQueryIsNotConstructed)
}

// OrderID returns the internal identifier of the order.
func (q GetOrderAssignmentQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderAssignmentQueryResponse is the assignment detail row shown in
// the admin order view and the rider's delivery screen.
type GetOrderAssignmentQueryResponse struct {
	ID                int64
	OrderID           int64
	RiderID           int64
	RiderName         string
	RiderPhone        string
	Status            string
	StatusBadge       string
	AssignedAt        time.Time
	AcceptedAt        *time.Time
	RejectedAt        *time.Time
	EstimatedDelivery string
	ActualDelivery    *time.Time
	DeliveryNotes     string
	RejectionReason   string
}
