package rider

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly
	// initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")
	// ErrNameIsRequired is returned when attempting to create a rider
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDuplicateZone is returned when adding a zone the rider already declared.
	ErrDuplicateZone = errs.NewValueIsInvalidErrorWithCause("zone",
		errors.New("zone is already declared for this rider"))
)

// Rider represents a delivery courier profile in the system. It is an
// aggregate root that manages the rider's identity, vehicle information,
// declared delivery zones, activity flag and running delivery counter.
//
// Key invariants:
//   - Must have a valid numeric key, a linked user account and a non-empty name
//   - Vehicle type is drawn from the closed enum (bike/car/van/truck)
//   - The zone set contains no duplicates, enforced at the point of addition
//   - total_deliveries only ever increases
//
// Riders are created by self-registration (which requires an existing
// customer profile), toggled active/inactive by an administrator, and never
// hard-deleted.
type Rider struct {
	id              kernel.ID
	userID          kernel.ID
	name            string
	email           string
	phone           string
	vehicleType     VehicleType
	vehicleNumber   string
	zones           []kernel.Zone
	isActive        bool
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewRider creates a new Rider from self-registration data. New riders
// start active with zero completed deliveries and no declared zones;
// zones are added afterwards via AddZone.
//
// Validation failures are aggregated so registration reports every problem
// at once.
func NewRider(id kernel.ID, userID kernel.ID, name, email, phone string, vehicleType VehicleType, vehicleNumber string) (*Rider, error) {
	r := &Rider{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setName(name),
		r.setVehicle(vehicleType, vehicleNumber),
	); err != nil {
		return nil, err
	}

	r.email = email
	r.phone = phone
	return r, nil
}

// RestoreRider reconstructs a Rider from persistence with its full state,
// including the activity flag, declared zones and the delivery counter.
// Zone deduplication is re-enforced during restoration.
func RestoreRider(
	id kernel.ID,
	userID kernel.ID,
	name, email, phone string,
	vehicleType VehicleType,
	vehicleNumber string,
	zones []kernel.Zone,
	isActive bool,
	totalDeliveries int,
) (*Rider, error) {
	r, err := NewRider(id, userID, name, email, phone, vehicleType, vehicleNumber)
	if err != nil {
		return nil, err
	}

	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("total_deliveries")
	}

	for _, zone := range zones {
		if err = r.AddZone(zone); err != nil {
			return nil, err
		}
	}

	r.isActive = isActive
	r.totalDeliveries = totalDeliveries
	return r, nil
}

// Validate ensures the Rider was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their numeric key.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's numeric key.
func (r *Rider) ID() kernel.ID {
	return r.id
}

// UserID returns the key of the underlying user account.
func (r *Rider) UserID() kernel.ID {
	return r.userID
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the denormalized account email.
func (r *Rider) Email() string {
	return r.email
}

// Phone returns the denormalized account phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// VehicleType returns the rider's vehicle type.
func (r *Rider) VehicleType() VehicleType {
	return r.vehicleType
}

// VehicleNumber returns the registration number of the vehicle, empty if
// the vehicle has none (e.g. bicycles).
func (r *Rider) VehicleNumber() string {
	return r.vehicleNumber
}

// Zones returns a copy of the rider's declared delivery zones.
func (r *Rider) Zones() []kernel.Zone {
	zones := make([]kernel.Zone, len(r.zones))
	copy(zones, r.zones)
	return zones
}

// IsActive reports whether the rider is currently accepting assignments.
func (r *Rider) IsActive() bool {
	return r.isActive
}

// TotalDeliveries returns the running count of completed deliveries.
func (r *Rider) TotalDeliveries() int {
	return r.totalDeliveries
}

// Activate marks the rider as available for assignments.
// Toggled by an administrator; activating an active rider is a no-op.
func (r *Rider) Activate() {
	r.isActive = true
}

// Deactivate marks the rider as unavailable for assignments.
// Existing assignments are unaffected; the rider simply stops appearing in
// the active set used for new assignments.
func (r *Rider) Deactivate() {
	r.isActive = false
}

// AddZone declares a new delivery zone for the rider.
// Duplicate zones (case-insensitive) are rejected, keeping the zone set
// free of duplicates at the point of addition.
func (r *Rider) AddZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	for _, existing := range r.zones {
		if existing.IsEqual(zone) {
			return ErrDuplicateZone
		}
	}
	r.zones = append(r.zones, zone)
	return nil
}

// RemoveZone withdraws a declared zone. Removing a zone the rider never
// declared is a no-op.
func (r *Rider) RemoveZone(zone kernel.Zone) {
	for i, existing := range r.zones {
		if existing.IsEqual(zone) {
			r.zones = append(r.zones[:i], r.zones[i+1:]...)
			return
		}
	}
}

// SetVehicle updates the rider's vehicle information.
func (r *Rider) SetVehicle(vehicleType VehicleType, vehicleNumber string) error {
	return r.setVehicle(vehicleType, vehicleNumber)
}

// ServesZone reports whether any of the rider's declared zones matches the
// given delivery location (case-insensitive substring containment).
func (r *Rider) ServesZone(location string) bool {
	for _, zone := range r.zones {
		if zone.Matches(location) {
			return true
		}
	}
	return false
}

// RecordDelivery increments the rider's completed-delivery counter.
// Called when one of the rider's assignments reaches delivered.
func (r *Rider) RecordDelivery() {
	r.totalDeliveries++
}

func (r *Rider) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	r.userID = userID
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setVehicle(vehicleType VehicleType, vehicleNumber string) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	r.vehicleType = vehicleType
	r.vehicleNumber = vehicleNumber
	return nil
}
