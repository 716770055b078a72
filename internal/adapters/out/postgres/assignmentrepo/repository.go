package assignmentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next assignment id from the table's sequence.
func (r *GormAssignmentRepository) NextID(ctx context.Context) (kernel.ID, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT nextval(pg_get_serial_sequence('assignments', 'id'))`).
		Scan(&next).Error
	if err != nil {
		return kernel.ID{}, err
	}

	return kernel.NewID(next)
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "AcceptedAt", "RejectedAt", "EstimatedDelivery",
			"ActualDelivery", "DeliveryNotes", "RejectionReason").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by its internal id.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the most recent assignment for the order,
// whatever its status. Callers decide whether a terminal assignment
// counts as live.
func (r *GormAssignmentRepository) GetByOrderID(ctx context.Context, orderID kernel.ID) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Int64()).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDelivered retrieves delivered assignments whose parent order is
// still in the Shipped status, i.e. awaiting reconciliation.
func (r *GormAssignmentRepository) GetAllDelivered(ctx context.Context) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", assignment.Delivered.WireName()).
		Where("order_id IN (?)", r.db.Table("orders").
			Select("id").
			Where("status = ?", order.Shipped.WireName())).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		assignments = append(assignments, aggregate)
	}

	return assignments, nil
}
