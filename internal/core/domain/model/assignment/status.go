package assignment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the sub-lifecycle of a delivery assignment, separate
// from the parent order's status.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	          │        │            │            │
//	          ├──> Rejected        └────────────┴──> Cancelled
//	          └──> Cancelled
//
// The rider advances Accepted/PickedUp/InTransit forward only; skipping a
// progress state is allowed, regressing is not. Rejected, Delivered and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined assignment status.
	Unknown Status = iota

	// Pending is the initial status when an administrator assigns a rider.
	// The rider has not yet accepted or rejected the delivery.
	Pending

	// Accepted indicates the rider agreed to take the delivery.
	Accepted

	// Rejected indicates the rider declined; a rejection reason is recorded
	// and the administrator must pick a different rider. Terminal.
	Rejected

	// PickedUp indicates the rider collected the package.
	PickedUp

	// InTransit indicates the package is on its way to the customer.
	InTransit

	// Delivered indicates the rider completed the delivery. Terminal.
	Delivered

	// Cancelled indicates the assignment was abandoned. Terminal.
	Cancelled
)

// getWireNames maps each status to its lowercase wire token.
func getWireNames() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// progressRank orders the rider progress states so that forward-only
// advancement can be enforced. States outside the progression rank zero.
func progressRank(s Status) int {
	switch s {
	case Accepted:
		return 1
	case PickedUp:
		return 2
	case InTransit:
		return 3
	case Delivered:
		return 4
	default:
		return 0
	}
}

// StatusFromWire converts a wire token to a Status.
// Assignment statuses only ever come from this service's own storage and
// request payloads, so an unrecognized token is rejected with an error.
func StatusFromWire(token string) (Status, error) {
	for status, name := range getWireNames() {
		if name == token {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized assignment status", token))
}

// Validate checks if the Status is a member of the closed enum.
func (s Status) Validate() error {
	if _, ok := getWireNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// WireName returns the lowercase wire token for the status.
func (s Status) WireName() string {
	if name, ok := getWireNames()[s]; ok {
		return name
	}
	return "unknown"
}

// String returns the wire token. Implements fmt.Stringer.
func (s Status) String() string {
	return s.WireName()
}

// BadgeColor returns the badge color token used when rendering the status.
func (s Status) BadgeColor() string {
	switch s {
	case Pending:
		return "warning"
	case Accepted, PickedUp:
		return "info"
	case InTransit:
		return "primary"
	case Delivered:
		return "success"
	case Rejected, Cancelled:
		return "danger"
	default:
		return "default"
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered || s == Cancelled
}

// Accept transitions Pending to Accepted. Any other source state is a
// conflict: the assignment was already handled.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("assignment", s.WireName(), Accepted.WireName())
	}
	return Accepted, nil
}

// Reject transitions Pending to Rejected. Any other source state is a
// conflict: the assignment was already handled.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("assignment", s.WireName(), Rejected.WireName())
	}
	return Rejected, nil
}

// Advance moves the rider's progress forward to the target status.
//
// The source must be one of the progress states (Accepted, PickedUp,
// InTransit) and the target one of PickedUp, InTransit, Delivered or
// Cancelled. Skipping a progress state is allowed; moving backward is not.
func (s Status) Advance(target Status) (Status, error) {
	if s != Accepted && s != PickedUp && s != InTransit {
		return Unknown, errs.NewInvalidTransitionError("assignment", s.WireName(), target.WireName())
	}

	switch target {
	case PickedUp, InTransit, Delivered:
		if progressRank(target) <= progressRank(s) {
			return Unknown, errs.NewInvalidTransitionError("assignment", s.WireName(), target.WireName())
		}
		return target, nil
	case Cancelled:
		return Cancelled, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid progress target", target.WireName()))
	}
}

// Cancel transitions any non-terminal status to Cancelled. Used by the
// administrator when rebinding an order to a different rider.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError("assignment", s.WireName(), Cancelled.WireName())
	}
	return Cancelled, nil
}
