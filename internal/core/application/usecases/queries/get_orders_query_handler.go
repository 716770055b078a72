package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the admin order list from the database.
// Rows are denormalized for display: the wire status is translated to its
// display name and badge color here, so templates never touch the enum.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first. A stored status outside
// the known enum renders as Unknown rather than failing the whole list.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			secure_id,
			customer_name,
			customer_email,
			total_price,
			jsonb_array_length(items) AS item_count,
			shipping_address,
			status,
			courier_service,
			tracking_id
		FROM orders
		ORDER BY id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var statusToken string
		var courierService, trackingID sql.NullString

		err = rows.Scan(
			&resp.ID,
			&resp.SecureID,
			&resp.CustomerName,
			&resp.CustomerEmail,
			&resp.TotalPrice,
			&resp.ItemCount,
			&resp.ShippingAddress,
			&statusToken,
			&courierService,
			&trackingID,
		)
		if err != nil {
			return nil, err
		}

		status := order.StatusFromWire(statusToken)
		resp.Status = statusToken
		resp.StatusDisplay = status.DisplayName()
		resp.StatusBadge = status.BadgeColor()
		resp.CourierService = courierService.String
		resp.TrackingID = trackingID.String

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
