package order

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// CourierServiceOther is the literal accepted for courier services outside
// the known list.
const CourierServiceOther = "Other"

// ErrShippingInfoIsNotConstructed is returned when using an improperly
// initialized ShippingInfo.
var ErrShippingInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"shipping info must be created via NewShippingInfo constructor")

// KnownCourierServices returns the courier services the storefront
// integrates with. "Other" is accepted separately for couriers outside
// this list.
func KnownCourierServices() []string {
	return []string{
		"Pathao",
		"RedX",
		"Steadfast",
		"Sundarban Courier",
		"SA Paribahan",
		"FedEx",
		"DHL",
	}
}

// IsKnownCourierService reports whether the given name is a known courier
// service or the "Other" literal.
func IsKnownCourierService(name string) bool {
	if name == CourierServiceOther {
		return true
	}
	for _, known := range KnownCourierServices() {
		if known == name {
			return true
		}
	}
	return false
}

// ShippingInfo is the shipping record embedded in an order once it reaches
// the Shipped state: courier service, tracking id, optional human-readable
// ETA, free-text notes, and the rider bound to the delivery.
//
// ShippingInfo is an immutable value object. The zero value is invalid;
// use NewShippingInfo.
type ShippingInfo struct { //nolint:recvcheck //using for validation
	courierService    string
	trackingID        string
	estimatedDelivery string
	notes             string
	riderID           kernel.ID

	guard guard.ConstructorGuard
}

// NewShippingInfo creates a validated shipping record.
// Courier service must be a known courier or "Other", tracking id must be
// non-empty, and the rider id must be valid. ETA and notes are optional.
//
// Field-by-field, user-facing validation with aggregated messages lives in
// services.ShippingValidator; this constructor is the hard backstop that
// keeps invalid records out of the aggregate.
func NewShippingInfo(courierService, trackingID, estimatedDelivery, notes string, riderID kernel.ID) (ShippingInfo, error) {
	if courierService == "" {
		return ShippingInfo{}, errs.NewValueIsRequiredError("courier_service")
	}
	if !IsKnownCourierService(courierService) {
		return ShippingInfo{}, errs.NewValueIsInvalidError("courier_service")
	}
	if trackingID == "" {
		return ShippingInfo{}, errs.NewValueIsRequiredError("tracking_id")
	}
	if err := riderID.Validate(); err != nil {
		return ShippingInfo{}, errs.NewValueIsRequiredErrorWithCause("rider_id", err)
	}

	return ShippingInfo{
		courierService:    courierService,
		trackingID:        trackingID,
		estimatedDelivery: estimatedDelivery,
		notes:             notes,
		riderID:           riderID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the ShippingInfo was created via NewShippingInfo.
func (s ShippingInfo) Validate() error {
	return s.guard.Validate(ErrShippingInfoIsNotConstructed)
}

// CourierService returns the courier service name.
func (s ShippingInfo) CourierService() string {
	return s.courierService
}

// TrackingID returns the courier tracking identifier.
func (s ShippingInfo) TrackingID() string {
	return s.trackingID
}

// EstimatedDelivery returns the human-readable ETA string, empty if unset.
func (s ShippingInfo) EstimatedDelivery() string {
	return s.estimatedDelivery
}

// Notes returns the free-text shipping notes, empty if unset.
func (s ShippingInfo) Notes() string {
	return s.notes
}

// RiderID returns the id of the rider bound to the delivery.
func (s ShippingInfo) RiderID() kernel.ID {
	return s.riderID
}
