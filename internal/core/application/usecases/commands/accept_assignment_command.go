package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand represents a rider taking on a pending delivery
// assignment, optionally stating when they expect to deliver.
//
// The rider id comes from the authenticated caller, not from the request
// body: a rider can only act on their own assignments.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID      kernel.ID
	riderID           kernel.ID
	estimatedDelivery string

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates a command for the rider to accept the
// assignment. The estimated delivery note is optional free text.
func NewAcceptAssignmentCommand(assignmentID, riderID kernel.ID, estimatedDelivery string) (AcceptAssignmentCommand, error) {
	command := AcceptAssignmentCommand{
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setRiderID(riderID),
	); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the internal identifier of the assignment.
func (c AcceptAssignmentCommand) AssignmentID() kernel.ID {
	return c.assignmentID
}

// RiderID returns the identifier of the acting rider.
func (c AcceptAssignmentCommand) RiderID() kernel.ID {
	return c.riderID
}

// EstimatedDelivery returns the rider's delivery estimate, empty if unset.
func (c AcceptAssignmentCommand) EstimatedDelivery() string {
	return c.estimatedDelivery
}

func (c *AcceptAssignmentCommand) setAssignmentID(assignmentID kernel.ID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AcceptAssignmentCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
