package assignment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor")
	// ErrRejectionReasonIsRequired is returned when rejecting without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection_reason")
	// ErrRejectionReasonNotAllowed is returned when restoring a non-rejected
	// assignment that carries a rejection reason.
	ErrRejectionReasonNotAllowed = errs.NewValueIsInvalidErrorWithCause("rejection_reason",
		errors.New("rejection reason is present only on rejected assignments"))
	// ErrActualDeliveryNotAllowed is returned when restoring a non-delivered
	// assignment that carries an actual-delivery timestamp.
	ErrActualDeliveryNotAllowed = errs.NewValueIsInvalidErrorWithCause("actual_delivery",
		errors.New("actual delivery timestamp is present only on delivered assignments"))
	// ErrActualDeliveryIsRequired is returned when restoring a delivered
	// assignment without an actual-delivery timestamp.
	ErrActualDeliveryIsRequired = errs.NewValueIsRequiredError("actual_delivery")
)

// Assignment binds exactly one Order to exactly one Rider for delivery,
// with its own sub-lifecycle independent of the order's status.
//
// Key invariants:
//   - rejection_reason is present if and only if status is rejected
//   - actual_delivery is present if and only if status is delivered
//   - re-applying an already-applied transition fails with a conflict,
//     never silently re-applies
//
// Assignments are created when an administrator assigns a rider to an
// approved order, advanced by the rider through accept/reject and the
// progress states, and read widely by admin, rider and customer tracking
// views (read-only in the latter).
type Assignment struct {
	id                kernel.ID
	secureID          kernel.SecureID
	orderID           kernel.ID
	riderID           kernel.ID
	status            Status
	assignedAt        time.Time
	acceptedAt        *time.Time
	rejectedAt        *time.Time
	estimatedDelivery string
	actualDelivery    *time.Time
	deliveryNotes     string
	rejectionReason   string

	guard guard.ConstructorGuard
}

// NewAssignment creates a new pending Assignment binding the order to the
// rider, stamped with the current time. The administrator may attach
// free-text delivery notes for the rider at hand-off.
func NewAssignment(
	id kernel.ID,
	secureID kernel.SecureID,
	orderID, riderID kernel.ID,
	deliveryNotes string,
) (*Assignment, error) {
	a := &Assignment{
		status:        Pending,
		assignedAt:    time.Now().UTC(),
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setSecureID(secureID),
		a.setOrderID(orderID),
		a.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, enforcing
// the status/timestamp consistency invariants.
func RestoreAssignment(
	id kernel.ID,
	secureID kernel.SecureID,
	orderID, riderID kernel.ID,
	status Status,
	assignedAt time.Time,
	acceptedAt, rejectedAt *time.Time,
	estimatedDelivery string,
	actualDelivery *time.Time,
	deliveryNotes, rejectionReason string,
) (*Assignment, error) {
	a, err := NewAssignment(id, secureID, orderID, riderID, deliveryNotes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if rejectionReason != "" && status != Rejected {
		return nil, ErrRejectionReasonNotAllowed
	}
	if status == Rejected && rejectionReason == "" {
		return nil, ErrRejectionReasonIsRequired
	}
	if actualDelivery != nil && status != Delivered {
		return nil, ErrActualDeliveryNotAllowed
	}
	if status == Delivered && actualDelivery == nil {
		return nil, ErrActualDeliveryIsRequired
	}

	a.status = status
	a.assignedAt = assignedAt
	a.acceptedAt = acceptedAt
	a.rejectedAt = rejectedAt
	a.estimatedDelivery = estimatedDelivery
	a.actualDelivery = actualDelivery
	a.deliveryNotes = deliveryNotes
	a.rejectionReason = rejectionReason
	return a, nil
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by their numeric key.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's numeric key.
func (a *Assignment) ID() kernel.ID {
	return a.id
}

// SecureID returns the assignment's public-facing token.
func (a *Assignment) SecureID() kernel.SecureID {
	return a.secureID
}

// OrderID returns the key of the bound order.
func (a *Assignment) OrderID() kernel.ID {
	return a.orderID
}

// RiderID returns the key of the bound rider.
func (a *Assignment) RiderID() kernel.ID {
	return a.riderID
}

// Status returns the assignment's current status.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns when the administrator created the assignment.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// AcceptedAt returns when the rider accepted, nil if not accepted.
func (a *Assignment) AcceptedAt() *time.Time {
	return a.acceptedAt
}

// RejectedAt returns when the rider rejected, nil if not rejected.
func (a *Assignment) RejectedAt() *time.Time {
	return a.rejectedAt
}

// EstimatedDelivery returns the rider's ETA string, empty if unset.
func (a *Assignment) EstimatedDelivery() string {
	return a.estimatedDelivery
}

// ActualDelivery returns the delivery completion timestamp, nil until the
// assignment reaches delivered.
func (a *Assignment) ActualDelivery() *time.Time {
	return a.actualDelivery
}

// DeliveryNotes returns the rider's free-text notes, empty if unset.
func (a *Assignment) DeliveryNotes() string {
	return a.deliveryNotes
}

// RejectionReason returns why the rider declined, empty unless rejected.
func (a *Assignment) RejectionReason() string {
	return a.rejectionReason
}

// Accept records the rider taking the delivery. Legal only while pending;
// the optional estimated delivery is recorded if supplied.
func (a *Assignment) Accept(estimatedDelivery string) error {
	newStatus, err := a.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.acceptedAt = &now
	if estimatedDelivery != "" {
		a.estimatedDelivery = estimatedDelivery
	}
	return nil
}

// Reject records the rider declining the delivery. Legal only while
// pending; the reason is mandatory. The parent order is not touched:
// rejection requires the administrator to pick a different rider.
func (a *Assignment) Reject(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	newStatus, err := a.status.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.rejectedAt = &now
	a.rejectionReason = reason
	return nil
}

// AdvanceTo moves the rider's progress to the target status (picked_up,
// in_transit, delivered or cancelled), forward only. Reaching delivered
// stamps the actual-delivery timestamp. Optional notes are recorded if
// supplied.
func (a *Assignment) AdvanceTo(target Status, notes string) error {
	newStatus, err := a.status.Advance(target)
	if err != nil {
		return err
	}

	a.status = newStatus
	if notes != "" {
		a.deliveryNotes = notes
	}
	if newStatus == Delivered {
		now := time.Now().UTC()
		a.actualDelivery = &now
	}
	return nil
}

// Cancel abandons the assignment from any non-terminal state. Used by the
// administrator when rebinding the order to a different rider.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}
	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setSecureID(secureID kernel.SecureID) error {
	if err := secureID.Validate(); err != nil {
		return err
	}
	a.secureID = secureID
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("rider_id", err)
	}
	a.riderID = riderID
	return nil
}
