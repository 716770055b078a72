package riderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider with their zones to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
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

// Update saves an existing rider. The zone set is replaced wholesale: zone
// edits are rare and the set is small, so diffing is not worth the code.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Select("UserID", "Name", "Email", "Phone", "VehicleType", "VehicleNumber", "IsActive", "TotalDeliveries").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&RiderZoneDTO{}, "rider_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Zones) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Zones).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider with their zones by internal id.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.ID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).Preload("Zones").First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the rider bound to the given user account.
func (r *GormRiderRepository) GetByUserID(ctx context.Context, userID kernel.ID) (*rider.Rider, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).Preload("Zones").First(&dto, "user_id = ?", userID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active rider with their zones, ordered by name.
func (r *GormRiderRepository) GetAllActive(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	err := r.db.WithContext(ctx).Preload("Zones").
		Where("is_active").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByZone retrieves active riders whose zone labels contain the given
// location, case-insensitively. An empty location behaves like GetAllActive.
func (r *GormRiderRepository) FindByZone(ctx context.Context, location string) ([]*rider.Rider, error) {
	if location == "" {
		return r.GetAllActive(ctx)
	}

	var dtos []RiderDTO
	err := r.db.WithContext(ctx).Preload("Zones").
		Where("is_active").
		Where("id IN (?)", r.db.Model(&RiderZoneDTO{}).
			Select("rider_id").
			Where("zone ILIKE ?", "%"+location+"%")).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RiderDTO) ([]*rider.Rider, error) {
	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, aggregate)
	}
	return riders, nil
}
