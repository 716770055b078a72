// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order ids come from the storefront, so the primary key is not generated
// here. Shipping columns are null until the order reaches Shipped.
type OrderDTO struct {
	ID              int64         `gorm:"primaryKey;autoIncrement:false"`
	SecureID        uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	CustomerName    string        `gorm:"not null"`
	CustomerEmail   string        `gorm:"not null"`
	CustomerPhone   string        `gorm:"not null"`
	Items           []LineItemDTO `gorm:"serializer:json;type:jsonb"`
	TotalPrice      float64
	ShippingAddress string
	Status          string `gorm:"index;not null"`
	TransactionID   string

	CourierService    *string
	TrackingID        *string
	EstimatedDelivery *string
	ShippingNotes     *string
	RiderID           *int64 `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one ordered product line inside the jsonb items column.
type LineItemDTO struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	dto := OrderDTO{
		ID:              aggregate.ID().Int64(),
		SecureID:        aggregate.SecureID().Bytes(),
		CustomerName:    aggregate.Customer().Name,
		CustomerEmail:   aggregate.Customer().Email,
		CustomerPhone:   aggregate.Customer().Phone,
		Items:           items,
		TotalPrice:      aggregate.TotalPrice(),
		ShippingAddress: aggregate.ShippingAddress(),
		Status:          aggregate.Status().WireName(),
		TransactionID:   aggregate.TransactionID(),
	}

	if shipping := aggregate.Shipping(); shipping != nil {
		courierService := shipping.CourierService()
		trackingID := shipping.TrackingID()
		estimatedDelivery := shipping.EstimatedDelivery()
		notes := shipping.Notes()
		riderID := shipping.RiderID().Int64()

		dto.CourierService = &courierService
		dto.TrackingID = &trackingID
		dto.EstimatedDelivery = &estimatedDelivery
		dto.ShippingNotes = &notes
		dto.RiderID = &riderID
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, rebuilding the shipping record when present.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	secureID, err := kernel.SecureIDFromBytes(dto.SecureID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	var shipping *order.ShippingInfo
	if dto.CourierService != nil && dto.RiderID != nil {
		riderID, riderErr := kernel.NewID(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}

		record, shippingErr := order.NewShippingInfo(
			*dto.CourierService,
			stringValue(dto.TrackingID),
			stringValue(dto.EstimatedDelivery),
			stringValue(dto.ShippingNotes),
			riderID,
		)
		if shippingErr != nil {
			return nil, shippingErr
		}
		shipping = &record
	}

	return order.RestoreOrder(
		id,
		secureID,
		order.Customer{Name: dto.CustomerName, Email: dto.CustomerEmail, Phone: dto.CustomerPhone},
		items,
		dto.TotalPrice,
		dto.ShippingAddress,
		order.StatusFromWire(dto.Status),
		dto.TransactionID,
		shipping,
	)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
