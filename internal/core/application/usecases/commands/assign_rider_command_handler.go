package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRiderNotFound is returned when the rider to bind does not exist.
	ErrRiderNotFound = errors.New("rider not found")
	// ErrRiderNotActive is returned when the rider to bind is deactivated.
	ErrRiderNotActive = errors.New("rider is not active")
)

// AssignRiderCommandHandler binds a rider to an order by creating or
// rebinding a pending delivery assignment. The order's own status is never
// touched: the Shipped transition remains the administrator's explicit
// decision.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory)
//	cmd, _ := NewAssignRiderCommand(orderID, riderID, "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // unknown order
//	case errors.Is(err, ErrRiderNotActive):
//	    // rider exists but is deactivated
//	case errors.Is(err, ErrAssignmentInProgress):
//	    // the current rider already accepted the delivery
//	}
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider binding operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignRiderCommandHandler(uowFactory UoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider binding command.
// Verifies the order exists and the rider exists and is active, then
// creates or rebinds the pending assignment within a single transaction.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	deliveryRider, err := uow.RiderRepository().Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}
	if !deliveryRider.IsActive() {
		return ErrRiderNotActive
	}

	if _, err = bindRider(
		ctx, uow.AssignmentRepository(), aggregate.ID(), deliveryRider.ID(), command.DeliveryNotes(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
