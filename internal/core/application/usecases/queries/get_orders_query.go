// Package queries contains read-only operations over the fulfillment data.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database (or through repository
// snapshots for the zone search) and never mutate state.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the admin order list, newest first.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("#%d %s %s\n", o.ID, o.CustomerName, o.StatusDisplay)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve the order list.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one admin order list row: order identity,
// customer, totals and the display-level status with its badge color.
// Shipping columns are empty until the order reaches Shipped.
type GetOrdersQueryResponse struct {
	ID              int64
	SecureID        string
	CustomerName    string
	CustomerEmail   string
	TotalPrice      float64
	ItemCount       int
	ShippingAddress string
	Status          string
	StatusDisplay   string
	StatusBadge     string
	CourierService  string
	TrackingID      string
}
