package queries

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

// splitZones unpacks the comma-aggregated zone column. Zone labels are
// validated to be non-blank at write time, so a plain split is enough.
func splitZones(aggregated string) []string {
	if aggregated == "" {
		return []string{}
	}
	return strings.Split(aggregated, ",")
}

// GetActiveRidersQueryHandler reads the active rider snapshot from the
// database, zones aggregated per rider.
type GetActiveRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRidersQueryHandler creates a handler for active rider queries.
// Requires a GORM database connection for query execution.
func NewGetActiveRidersQueryHandler(db *gorm.DB) GetActiveRidersQueryHandler {
	return GetActiveRidersQueryHandler{db: db}
}

// Handle executes the query. Riders are ordered by name; a rider without
// configured zones appears with an empty zone list.
func (h GetActiveRidersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRidersQuery,
) ([]RiderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]RiderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.phone,
			r.vehicle_type,
			r.vehicle_number,
			string_agg(z.zone, ',' ORDER BY z.zone) AS zones,
			r.total_deliveries
		FROM riders r
		LEFT JOIN rider_zones z ON z.rider_id = r.id
		WHERE r.is_active
		GROUP BY r.id, r.name, r.phone, r.vehicle_type, r.vehicle_number, r.total_deliveries
		ORDER BY r.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary RiderSummary
		var zones sql.NullString

		err = rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Phone,
			&summary.VehicleType,
			&summary.VehicleNumber,
			&zones,
			&summary.TotalDeliveries,
		)
		if err != nil {
			return nil, err
		}

		summary.Zones = splitZones(zones.String)
		riders = append(riders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
