package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents an administrator binding a rider to an
// order without touching the order's fulfillment status. Used to pick or
// swap the rider ahead of (or after) the Shipped transition. Optional
// delivery notes are handed to the rider with the assignment.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(orderID, riderID, "Call on arrival")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ID
	riderID       kernel.ID
	deliveryNotes string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command binding the rider to the order.
// Both identifiers must be valid; the delivery notes may be empty.
func NewAssignRiderCommand(orderID, riderID kernel.ID, deliveryNotes string) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRiderCommandIsNotConstructed if validation fails.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order.
func (c AssignRiderCommand) OrderID() kernel.ID {
	return c.orderID
}

// RiderID returns the internal identifier of the rider to bind.
func (c AssignRiderCommand) RiderID() kernel.ID {
	return c.riderID
}

// DeliveryNotes returns the administrator's free-text instructions for the
// rider, empty if none were supplied.
func (c AssignRiderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
