package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderAssignmentQueryHandler reads the current delivery assignment of
// an order, joined with the bound rider for display. Cancelled assignments
// are skipped: they only document rebinding history.
type GetOrderAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAssignmentQueryHandler creates a handler for assignment lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderAssignmentQueryHandler(db *gorm.DB) GetOrderAssignmentQueryHandler {
	return GetOrderAssignmentQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when the order has no live assignment.
func (h GetOrderAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAssignmentQuery,
) (GetOrderAssignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderAssignmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			a.rider_id,
			r.name,
			r.phone,
			a.status,
			a.assigned_at,
			a.accepted_at,
			a.rejected_at,
			a.estimated_delivery,
			a.actual_delivery,
			a.delivery_notes,
			a.rejection_reason
		FROM assignments a
		JOIN riders r ON r.id = a.rider_id
		WHERE a.order_id = ? AND a.status != ?
		ORDER BY a.assigned_at DESC
		LIMIT 1
	`, query.OrderID().Int64(), assignment.Cancelled.WireName()).Row()

	var resp GetOrderAssignmentQueryResponse
	var statusToken string
	var estimatedDelivery, deliveryNotes, rejectionReason sql.NullString

	err := row.Scan(
		&resp.ID,
		&resp.OrderID,
		&resp.RiderID,
		&resp.RiderName,
		&resp.RiderPhone,
		&statusToken,
		&resp.AssignedAt,
		&resp.AcceptedAt,
		&resp.RejectedAt,
		&estimatedDelivery,
		&resp.ActualDelivery,
		&deliveryNotes,
		&rejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderAssignmentQueryResponse{},
			errs.NewObjectNotFoundError("order_id", query.OrderID().Int64())
	}
	if err != nil {
		return GetOrderAssignmentQueryResponse{}, err
	}

	status, err := assignment.StatusFromWire(statusToken)
	if err != nil {
		return GetOrderAssignmentQueryResponse{}, err
	}

	resp.Status = statusToken
	resp.StatusBadge = status.BadgeColor()
	resp.EstimatedDelivery = estimatedDelivery.String
	resp.DeliveryNotes = deliveryNotes.String
	resp.RejectionReason = rejectionReason.String

	return resp, nil
}
