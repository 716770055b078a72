package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Approved ──> Shipped ──> Delivered
//	   │            │           │
//	   └────────────┴───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: once reached, every further
// transition is rejected.
//
// Status is a value object that validates state transitions and provides
// both the wire representation (lowercase backend token) and the display
// representation (capitalized admin label).
type Status int

const (
	// Unknown represents an invalid or undefined status. Backend values that
	// do not match any known wire token map here; Unknown never blocks
	// rendering but rejects every transition.
	Unknown Status = iota

	// Pending is the initial status assigned by checkout.
	Pending

	// Approved indicates an administrator accepted the order for fulfillment.
	Approved

	// Shipped indicates the order left with a courier. Requires a complete
	// shipping record and a bound rider.
	Shipped

	// Delivered indicates the customer received the order. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// getWireNames maps each status to the lowercase token persisted and
// transmitted by the backend.
func getWireNames() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Approved:  "approved",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getDisplayNames maps each status to the label shown in admin views.
func getDisplayNames() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromWire converts a backend wire token to a Status.
// Any token outside the known enum yields Unknown without an error: an
// unrecognized stored value must never block rendering an order list.
func StatusFromWire(token string) Status {
	for status, name := range getWireNames() {
		if name == token {
			return status
		}
	}
	return Unknown
}

// StatusFromDisplay converts a display-level status name to a Status.
//
// The display vocabulary is larger than the wire enum: both "Pending" and
// "Processing" map onto Pending. The collapse is lossy and deliberate - the
// storefront has always stored the two labels under one wire value, and
// changing that silently would reinterpret existing data.
//
// An unrecognized display name is a programmer error and is rejected with a
// value-is-invalid error before any I/O happens.
func StatusFromDisplay(name string) (Status, error) {
	switch name {
	case "Pending", "Processing":
		return Pending, nil
	case "Approved":
		return Approved, nil
	case "Shipped":
		return Shipped, nil
	case "Delivered":
		return Delivered, nil
	case "Cancelled":
		return Cancelled, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a recognized display status", name))
	}
}

// Validate checks if the Status value is a member of the closed enum.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getWireNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// WireName returns the lowercase backend token for the status.
// Unknown statuses return "unknown", which the backend never accepts.
func (s Status) WireName() string {
	if name, ok := getWireNames()[s]; ok {
		return name
	}
	return "unknown"
}

// DisplayName returns the admin-facing label for the status.
// Implements no fallback collapse: Pending renders as "Pending" even for
// orders originally labelled "Processing" (the wire value is all we have).
func (s Status) DisplayName() string {
	if name, ok := getDisplayNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// String returns the wire token. Implements fmt.Stringer.
func (s Status) String() string {
	return s.WireName()
}

// BadgeColor returns the badge color token used when rendering the status,
// keeping the label-to-color mapping in one place.
func (s Status) BadgeColor() string {
	switch s {
	case Pending:
		return "warning"
	case Approved:
		return "info"
	case Shipped:
		return "primary"
	case Delivered:
		return "success"
	case Cancelled:
		return "danger"
	default:
		return "default"
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ReachedShipment reports whether the order has reached or passed the
// Shipped state. Only such orders may carry a shipping record.
func (s Status) ReachedShipment() bool {
	return s == Shipped || s == Delivered || s == Cancelled
}

// Approve transitions the status to Approved.
// Legal only from Pending.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("order", s.WireName(), Approved.WireName())
	}
	return Approved, nil
}

// Ship transitions the status to Shipped.
// Legal only from Approved; the aggregate additionally requires a complete
// shipping record for this transition.
func (s Status) Ship() (Status, error) {
	if s != Approved {
		return Unknown, errs.NewInvalidTransitionError("order", s.WireName(), Shipped.WireName())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered.
// Legal only from Shipped.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, errs.NewInvalidTransitionError("order", s.WireName(), Delivered.WireName())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Legal from any non-terminal valid status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError("order", s.WireName(), Cancelled.WireName())
	}
	return Cancelled, nil
}

// TransitionTo validates and performs the transition to the target status,
// dispatching to the per-target rule. Used by the fulfillment controller so
// the transition table lives in exactly one place.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Approved:
		return s.Approve()
	case Shipped:
		return s.Ship()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	case Pending:
		return Unknown, errs.NewInvalidTransitionError("order", s.WireName(), Pending.WireName())
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid target status", target))
	}
}
