package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRejectAssignmentCommandIsNotConstructed = errors.New(
		"RejectAssignmentCommand must be created via NewRejectAssignmentCommand constructor",
	)
	// ErrRejectionReasonIsRequired is returned for a blank rejection reason,
	// before any repository work.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection_reason")
)

// RejectAssignmentCommand represents a rider declining a pending delivery
// assignment. A reason is mandatory so the administrator knows why the
// order needs a different rider.
type RejectAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.ID
	riderID      kernel.ID
	reason       string

	guard guard.ConstructorGuard
}

// NewRejectAssignmentCommand creates a command for the rider to reject the
// assignment. The reason must be non-blank.
func NewRejectAssignmentCommand(assignmentID, riderID kernel.ID, reason string) (RejectAssignmentCommand, error) {
	command := RejectAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setRiderID(riderID),
		command.setReason(reason),
	); err != nil {
		return RejectAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the internal identifier of the assignment.
func (c RejectAssignmentCommand) AssignmentID() kernel.ID {
	return c.assignmentID
}

// RiderID returns the identifier of the acting rider.
func (c RejectAssignmentCommand) RiderID() kernel.ID {
	return c.riderID
}

// Reason returns the rider's rejection reason.
func (c RejectAssignmentCommand) Reason() string {
	return c.reason
}

func (c *RejectAssignmentCommand) setAssignmentID(assignmentID kernel.ID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *RejectAssignmentCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RejectAssignmentCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
