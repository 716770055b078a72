package services

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/pkg/errs"
)

// ShippingDetails is the raw shipping input supplied by the administrator
// when moving an order to the Shipped state, before any validation.
type ShippingDetails struct {
	CourierService    string
	TrackingID        string
	EstimatedDelivery string
	Notes             string
	RiderID           kernel.ID
}

// ValidationError carries every rejection the ShippingValidator found in a
// single pass. The aggregated messages are meant to be shown to the
// administrator verbatim, so each one names the field and what is wrong
// with it.
type ValidationError struct {
	messages []string
}

// NewValidationError creates a ValidationError from the collected messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{messages: messages}
}

// Messages returns the individual rejection messages in check order.
func (e *ValidationError) Messages() []string {
	return e.messages
}

func (e *ValidationError) Error() string {
	return "shipping details are invalid: " + strings.Join(e.messages, "; ")
}

// Unwrap links the aggregate to the invalid-value sentinel so callers can
// classify it with errors.Is.
func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// ShippingValidator is a pure domain service that checks the shipping
// details supplied for the Shipped transition against the active rider
// snapshot.
//
// Unlike the aggregate constructors, which stop at the first problem, the
// validator collects every failure so the administrator can fix the whole
// form in one round trip.
//
// Business rules:
//   - Courier service must be one of the known couriers or the "Other"
//     literal
//   - Tracking id must be non-empty
//   - The chosen rider must be present in the supplied rider snapshot
type ShippingValidator struct{}

// NewShippingValidator creates a new ShippingValidator instance.
func NewShippingValidator() ShippingValidator {
	return ShippingValidator{}
}

// Validate checks the shipping details against the given rider snapshot
// and, when everything passes, builds the immutable shipping record.
//
// On failure it returns a *ValidationError aggregating every rejection;
// nothing may be persisted in that case.
func (v ShippingValidator) Validate(details ShippingDetails, riders []*rider.Rider) (order.ShippingInfo, error) {
	var messages []string

	if details.CourierService == "" {
		messages = append(messages, "courier service is required")
	} else if !order.IsKnownCourierService(details.CourierService) {
		messages = append(messages, fmt.Sprintf(
			"courier service %q is not recognized, pick one of the known couriers or \"Other\"",
			details.CourierService))
	}

	if strings.TrimSpace(details.TrackingID) == "" {
		messages = append(messages, "tracking ID is required")
	}

	if err := details.RiderID.Validate(); err != nil {
		messages = append(messages, "a delivery rider must be selected")
	} else if !riderInSnapshot(details.RiderID, riders) {
		messages = append(messages, fmt.Sprintf(
			"rider %d is not among the available riders", details.RiderID.Int64()))
	}

	if len(messages) > 0 {
		return order.ShippingInfo{}, NewValidationError(messages)
	}

	return order.NewShippingInfo(
		details.CourierService,
		details.TrackingID,
		details.EstimatedDelivery,
		details.Notes,
		details.RiderID,
	)
}

func riderInSnapshot(riderID kernel.ID, riders []*rider.Rider) bool {
	for _, r := range riders {
		if r != nil && r.ID().IsEqual(riderID) {
			return true
		}
	}
	return false
}
