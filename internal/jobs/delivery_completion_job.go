package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob periodically reconciles order statuses with rider
// delivery confirmations. Shipped orders whose assignment reached Delivered
// are advanced to Delivered by the sweep.
type DeliveryCompletionJob struct {
	handler  commands.CompleteDeliveredOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryCompletionJob creates a reconciliation job running on the given
// cron schedule (six-field expressions, seconds included).
func NewDeliveryCompletionJob(
	handler commands.CompleteDeliveredOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_completion_job"),
	}
}

// Start schedules the reconciliation sweep.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewCompleteDeliveredOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
