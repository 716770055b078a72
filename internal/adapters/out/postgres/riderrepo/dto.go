// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
// Zones are kept in a child table so the zone search can run server-side
// with an indexed query instead of unpacking a serialized column.
package riderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	UserID          int64  `gorm:"uniqueIndex"`
	Name            string `gorm:"not null"`
	Email           string `gorm:"not null"`
	Phone           string `gorm:"not null"`
	VehicleType     string `gorm:"not null"`
	VehicleNumber   string
	IsActive        bool           `gorm:"index"`
	TotalDeliveries int            `gorm:"not null;default:0"`
	Zones           []RiderZoneDTO `gorm:"foreignKey:RiderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// RiderZoneDTO is one delivery zone label served by a rider.
type RiderZoneDTO struct {
	RiderID int64  `gorm:"primaryKey;autoIncrement:false"`
	Zone    string `gorm:"primaryKey;index"`
}

// TableName specifies the database table name for rider zone rows.
func (RiderZoneDTO) TableName() string {
	return "rider_zones"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	zones := make([]RiderZoneDTO, 0, len(aggregate.Zones()))
	for _, zone := range aggregate.Zones() {
		zones = append(zones, RiderZoneDTO{
			RiderID: aggregate.ID().Int64(),
			Zone:    zone.Label(),
		})
	}

	return RiderDTO{
		ID:              aggregate.ID().Int64(),
		UserID:          aggregate.UserID().Int64(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		VehicleType:     aggregate.VehicleType().WireName(),
		VehicleNumber:   aggregate.VehicleNumber(),
		IsActive:        aggregate.IsActive(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Zones:           zones,
	}
}

// toDomain converts a database DTO to a rider domain aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	vehicleType, err := rider.VehicleTypeFromWire(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	zones := make([]kernel.Zone, 0, len(dto.Zones))
	for _, zoneDTO := range dto.Zones {
		zone, zoneErr := kernel.NewZone(zoneDTO.Zone)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zones = append(zones, zone)
	}

	return rider.RestoreRider(
		id,
		userID,
		dto.Name,
		dto.Email,
		dto.Phone,
		vehicleType,
		dto.VehicleNumber,
		zones,
		dto.IsActive,
		dto.TotalDeliveries,
	)
}
