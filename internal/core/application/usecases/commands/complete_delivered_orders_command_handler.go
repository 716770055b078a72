package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CompleteDeliveredOrdersCommandHandler advances shipped orders whose
// delivery assignment reached Delivered. Each order is processed in its own
// transaction so one bad row never blocks the rest of the sweep; a
// status-changed event is published per advanced order after its commit.
type CompleteDeliveredOrdersCommandHandler struct {
	uowFactory OrderAssignmentUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompleteDeliveredOrdersCommandHandler creates a handler for the
// reconciliation sweep.
func NewCompleteDeliveredOrdersCommandHandler(
	uowFactory OrderAssignmentUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteDeliveredOrdersCommandHandler {
	return CompleteDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "complete_delivered_orders"),
	}
}

// Handle runs one reconciliation sweep. Per-order failures are logged and
// skipped; the sweep itself only fails when the candidate set cannot be
// read at all.
func (h CompleteDeliveredOrdersCommandHandler) Handle(ctx context.Context, command CompleteDeliveredOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	candidates, err := h.deliveredAssignments(ctx)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if err = h.completeOrder(ctx, candidate); err != nil {
			h.logger.WarnContext(ctx, "failed to complete delivered order",
				"order_id", candidate.OrderID().Int64(), "error", err)
		}
	}

	return nil
}

// deliveredAssignments reads the delivered assignments whose parent order
// is still shipped.
func (h CompleteDeliveredOrdersCommandHandler) deliveredAssignments(ctx context.Context) ([]*assignment.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.AssignmentRepository().GetAllDelivered(ctx)
	if err != nil {
		return nil, err
	}

	return candidates, uow.Commit(ctx)
}

// completeOrder advances one order to Delivered in its own transaction.
func (h CompleteDeliveredOrdersCommandHandler) completeOrder(ctx context.Context, candidate *assignment.Assignment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, candidate.OrderID())
	if err != nil {
		return err
	}

	fromStatus := aggregate.Status()

	if err = aggregate.Deliver(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, aggregate, fromStatus)
	return nil
}

func (h CompleteDeliveredOrdersCommandHandler) publish(ctx context.Context, aggregate *order.Order, from order.Status) {
	if h.publisher == nil {
		return
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID(),
		SecureID:   aggregate.SecureID(),
		FromStatus: from.WireName(),
		ToStatus:   aggregate.Status().WireName(),
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID().Int64(), "error", err)
	}
}
