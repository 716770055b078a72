package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestOrderTransitionCommandIsNotConstructed = errors.New(
	"RequestOrderTransitionCommand must be created via NewRequestOrderTransitionCommand constructor",
)

// RequestOrderTransitionCommand represents an administrator's request to
// move an order to a new status, identified by the status display name as
// shown in the admin panel ("Approved", "Shipped", ...).
//
// The display name is resolved to a domain status at construction time, so
// an unrecognized name fails fast before any repository work. When the
// target is Shipped, the raw shipping details travel with the command;
// they are validated against the active rider snapshot inside the handler.
//
// Example:
//
//	cmd, err := NewRequestOrderTransitionCommand(orderID, "Shipped", services.ShippingDetails{
//	    CourierService: "Pathao",
//	    TrackingID:     "TRK123",
//	    RiderID:        riderID,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type RequestOrderTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	targetStatus order.Status
	shipping     services.ShippingDetails

	guard guard.ConstructorGuard
}

// NewRequestOrderTransitionCommand creates a transition request for an order.
// The target is given by display name and resolved immediately; shipping
// details are only meaningful when the resolved target is Shipped and are
// ignored otherwise.
func NewRequestOrderTransitionCommand(
	orderID kernel.ID,
	targetDisplayName string,
	shipping services.ShippingDetails,
) (RequestOrderTransitionCommand, error) {
	command := RequestOrderTransitionCommand{
		shipping: shipping,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTargetStatus(targetDisplayName),
	); err != nil {
		return RequestOrderTransitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestOrderTransitionCommandIsNotConstructed if validation fails.
func (c RequestOrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestOrderTransitionCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to transition.
func (c RequestOrderTransitionCommand) OrderID() kernel.ID {
	return c.orderID
}

// TargetStatus returns the resolved target status.
func (c RequestOrderTransitionCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Shipping returns the raw shipping details accompanying a Shipped request.
func (c RequestOrderTransitionCommand) Shipping() services.ShippingDetails {
	return c.shipping
}

func (c *RequestOrderTransitionCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestOrderTransitionCommand) setTargetStatus(displayName string) error {
	target, err := order.StatusFromDisplay(displayName)
	if err != nil {
		return err
	}

	c.targetStatus = target
	return nil
}
