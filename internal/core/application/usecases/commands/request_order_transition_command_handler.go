package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// RequestOrderTransitionCommandHandler applies an administrator-requested
// status transition to an order.
//
// Targets other than Shipped only move the status. The Shipped target is
// the heavy path: the shipping details are validated against the active
// rider snapshot (aggregating every failure), the shipping record is
// embedded into the order, and a pending assignment for the chosen rider
// is created or rebound, all inside one transaction. A validation failure
// aborts with zero writes.
//
// After a successful commit an order-status-changed event is published;
// publish failures are logged and never fail the command.
type RequestOrderTransitionCommandHandler struct {
	uowFactory UoWFactory
	validator  services.ShippingValidator
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewRequestOrderTransitionCommandHandler creates a handler for order
// transition requests.
func NewRequestOrderTransitionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RequestOrderTransitionCommandHandler {
	return RequestOrderTransitionCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewShippingValidator(),
		publisher:  publisher,
		logger:     logger.With("component", "request_order_transition"),
	}
}

// Handle processes the transition request.
// Returns ErrOrderNotFound when the order does not exist, a
// *services.ValidationError for rejected shipping details, and an
// errs.InvalidTransitionError when the state machine forbids the move.
func (h RequestOrderTransitionCommandHandler) Handle(ctx context.Context, command RequestOrderTransitionCommand) error {
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	fromStatus := aggregate.Status()

	if command.TargetStatus() == order.Shipped {
		err = h.ship(ctx, uow, aggregate, command.Shipping())
	} else {
		err = h.transition(aggregate, command.TargetStatus())
	}
	if err != nil {
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

// ship validates the shipping details, embeds the shipping record and
// binds the chosen rider, all on the already-open transaction.
func (h RequestOrderTransitionCommandHandler) ship(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	details services.ShippingDetails,
) error {
	riders, err := uow.RiderRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	shipping, err := h.validator.Validate(details, riders)
	if err != nil {
		return err
	}

	if err = aggregate.Ship(shipping); err != nil {
		return err
	}

	_, err = bindRider(ctx, uow.AssignmentRepository(), aggregate.ID(), shipping.RiderID(), shipping.Notes())
	return err
}

func (h RequestOrderTransitionCommandHandler) transition(aggregate *order.Order, target order.Status) error {
	switch target {
	case order.Approved:
		return aggregate.Approve()
	case order.Delivered:
		return aggregate.Deliver()
	case order.Cancelled:
		return aggregate.Cancel()
	default:
		_, err := aggregate.Status().TransitionTo(target)
		return err
	}
}

func (h RequestOrderTransitionCommandHandler) publish(ctx context.Context, aggregate *order.Order, from order.Status) {
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
