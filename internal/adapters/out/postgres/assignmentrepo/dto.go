// Package assignmentrepo provides data transfer objects and mapping functions
// for delivery assignment persistence.
package assignmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. The primary key is generated by the database sequence; ids
// are reserved up front through NextID so the aggregate is always
// constructed with its final identity.
type AssignmentDTO struct {
	ID       int64     `gorm:"primaryKey"`
	SecureID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID  int64     `gorm:"index;not null"`
	RiderID  int64     `gorm:"index;not null"`
	Status   string    `gorm:"index;not null"`

	AssignedAt        time.Time `gorm:"not null"`
	AcceptedAt        *time.Time
	RejectedAt        *time.Time
	EstimatedDelivery string
	ActualDelivery    *time.Time
	DeliveryNotes     string
	RejectionReason   string
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                aggregate.ID().Int64(),
		SecureID:          aggregate.SecureID().Bytes(),
		OrderID:           aggregate.OrderID().Int64(),
		RiderID:           aggregate.RiderID().Int64(),
		Status:            aggregate.Status().WireName(),
		AssignedAt:        aggregate.AssignedAt(),
		AcceptedAt:        aggregate.AcceptedAt(),
		RejectedAt:        aggregate.RejectedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		DeliveryNotes:     aggregate.DeliveryNotes(),
		RejectionReason:   aggregate.RejectionReason(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	secureID, err := kernel.SecureIDFromBytes(dto.SecureID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.NewID(dto.RiderID)
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromWire(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		secureID,
		orderID,
		riderID,
		status,
		dto.AssignedAt,
		dto.AcceptedAt,
		dto.RejectedAt,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.DeliveryNotes,
		dto.RejectionReason,
	)
}
