package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveredOrdersCommandIsNotConstructed = errors.New(
	"CompleteDeliveredOrdersCommand must be created via NewCompleteDeliveredOrdersCommand constructor",
)

// CompleteDeliveredOrdersCommand reconciles shipped orders with delivered
// assignments. A rider marking an assignment delivered does not advance the
// parent order synchronously; this command sweeps the gap and moves those
// orders to Delivered.
type CompleteDeliveredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveredOrdersCommand creates a reconciliation sweep command.
func NewCompleteDeliveredOrdersCommand() CompleteDeliveredOrdersCommand {
	return CompleteDeliveredOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveredOrdersCommandIsNotConstructed)
}
