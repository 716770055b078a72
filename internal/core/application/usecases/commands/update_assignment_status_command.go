package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateAssignmentStatusCommandIsNotConstructed = errors.New(
	"UpdateAssignmentStatusCommand must be created via NewUpdateAssignmentStatusCommand constructor",
)

// UpdateAssignmentStatusCommand represents a rider reporting delivery
// progress: picked_up, in_transit, delivered or cancelled, identified by
// the wire token. The token is resolved at construction time so an
// unrecognized value fails before any repository work.
type UpdateAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.ID
	riderID      kernel.ID
	targetStatus assignment.Status
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentStatusCommand creates a progress update command.
// The target is given by wire token ("picked_up", "in_transit",
// "delivered", "cancelled"); notes are optional free text.
func NewUpdateAssignmentStatusCommand(
	assignmentID, riderID kernel.ID,
	statusToken string,
	notes string,
) (UpdateAssignmentStatusCommand, error) {
	command := UpdateAssignmentStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setRiderID(riderID),
		command.setTargetStatus(statusToken),
	); err != nil {
		return UpdateAssignmentStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentStatusCommandIsNotConstructed)
}

// AssignmentID returns the internal identifier of the assignment.
func (c UpdateAssignmentStatusCommand) AssignmentID() kernel.ID {
	return c.assignmentID
}

// RiderID returns the identifier of the acting rider.
func (c UpdateAssignmentStatusCommand) RiderID() kernel.ID {
	return c.riderID
}

// TargetStatus returns the resolved target status.
func (c UpdateAssignmentStatusCommand) TargetStatus() assignment.Status {
	return c.targetStatus
}

// Notes returns the rider's progress notes, empty if unset.
func (c UpdateAssignmentStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateAssignmentStatusCommand) setAssignmentID(assignmentID kernel.ID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setTargetStatus(token string) error {
	target, err := assignment.StatusFromWire(token)
	if err != nil {
		return err
	}

	c.targetStatus = target
	return nil
}
