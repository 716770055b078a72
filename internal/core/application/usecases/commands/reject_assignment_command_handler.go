package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// RejectAssignmentCommandHandler processes a rider declining a pending
// delivery assignment. The parent order is deliberately left untouched:
// rejection means the administrator has to pick a different rider, not
// that the order falls back to an earlier fulfillment state.
type RejectAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRejectAssignmentCommandHandler creates a handler for assignment
// rejection operations.
func NewRejectAssignmentCommandHandler(uowFactory AssignmentUoWFactory) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Returns ErrAssignmentNotFound for an unknown assignment,
// ErrNotAssignmentOwner when the caller is not the bound rider, and an
// errs.InvalidTransitionError when the assignment is not pending (an
// accepted assignment cannot be rejected).
func (h RejectAssignmentCommandHandler) Handle(ctx context.Context, command RejectAssignmentCommand) error {
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

	if err = aggregate.Reject(command.Reason()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
