package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/pkg/errs"
)

// UpdateAssignmentStatusCommandHandler processes a rider's delivery
// progress report. Progress is forward-only; reaching delivered also
// increments the rider's lifetime delivery counter within the same
// transaction, so the counter can never drift from the assignment record.
//
// The parent order is not advanced here. The delivery completion job
// reconciles shipped orders whose assignment has been delivered.
type UpdateAssignmentStatusCommandHandler struct {
	uowFactory RiderAssignmentUoWFactory
}

// NewUpdateAssignmentStatusCommandHandler creates a handler for assignment
// progress updates.
func NewUpdateAssignmentStatusCommandHandler(uowFactory RiderAssignmentUoWFactory) UpdateAssignmentStatusCommandHandler {
	return UpdateAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress update.
// Returns ErrAssignmentNotFound for an unknown assignment,
// ErrNotAssignmentOwner when the caller is not the bound rider, and an
// errs.InvalidTransitionError for backward or out-of-sequence moves.
func (h UpdateAssignmentStatusCommandHandler) Handle(ctx context.Context, command UpdateAssignmentStatusCommand) error {
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

	if err = aggregate.AdvanceTo(command.TargetStatus(), command.Notes()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == assignment.Delivered {
		if err = h.recordDelivery(ctx, uow, command); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h UpdateAssignmentStatusCommandHandler) recordDelivery(
	ctx context.Context,
	uow RiderAssignmentUoW,
	command UpdateAssignmentStatusCommand,
) error {
	riderRepo := uow.RiderRepository()

	deliveryRider, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	deliveryRider.RecordDelivery()
	return riderRepo.Update(ctx, deliveryRider)
}
