package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrAssignmentNotFound is returned when the assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrNotAssignmentOwner is returned when a rider acts on an assignment
	// bound to a different rider.
	ErrNotAssignmentOwner = errors.New("assignment belongs to another rider")
)

// AcceptAssignmentCommandHandler processes a rider accepting a pending
// delivery assignment. Acceptance is only legal while the assignment is
// pending; anything else surfaces as an invalid-transition conflict rather
// than a silent re-apply.
type AcceptAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for assignment
// acceptance operations.
func NewAcceptAssignmentCommandHandler(uowFactory AssignmentUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Returns ErrAssignmentNotFound for an unknown assignment,
// ErrNotAssignmentOwner when the caller is not the bound rider, and an
// errs.InvalidTransitionError when the assignment is not pending.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, command AcceptAssignmentCommand) error {
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

	repo := uow.AssignmentRepository()

	aggregate, err := repo.Get(ctx, command.AssignmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAssignmentNotFound
	}
	if err != nil {
		return err
	}

	if !aggregate.RiderID().IsEqual(command.RiderID()) {
		return ErrNotAssignmentOwner
	}

	if err = aggregate.Accept(command.EstimatedDelivery()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
