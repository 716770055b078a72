package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrAssignmentInProgress is returned when rebinding is requested for an
// order whose current assignment has already been accepted by a rider.
// The rider must reject (or the delivery must finish) before the order can
// be handed to someone else.
var ErrAssignmentInProgress = errors.New(
	"order assignment is already in progress and cannot be rebound")

// bindRider ensures the order has exactly one live pending assignment for
// the given rider. Delivery notes, when supplied, are recorded on the
// freshly created assignment.
//
// Binding rules:
//   - no assignment yet, or the last one is rejected/cancelled: a new
//     pending assignment is created
//   - pending assignment for the same rider: kept as is
//   - pending assignment for a different rider: cancelled and replaced
//   - accepted or further progressed assignment: ErrAssignmentInProgress
func bindRider(
	ctx context.Context,
	repo ports.AssignmentRepository,
	orderID, riderID kernel.ID,
	deliveryNotes string,
) (*assignment.Assignment, error) {
	existing, err := repo.GetByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if existing != nil {
		switch {
		case existing.Status() == assignment.Pending && existing.RiderID().IsEqual(riderID):
			return existing, nil
		case existing.Status() == assignment.Pending:
			if err = existing.Cancel(); err != nil {
				return nil, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return nil, err
			}
		case existing.Status() == assignment.Rejected || existing.Status() == assignment.Cancelled:
			// superseded, a fresh assignment replaces it
		default:
			return nil, ErrAssignmentInProgress
		}
	}

	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := assignment.NewAssignment(id, kernel.NewSecureID(), orderID, riderID, deliveryNotes)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
