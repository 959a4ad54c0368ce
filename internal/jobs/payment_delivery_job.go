package jobs

import (
	"context"
	"errors"
	"log/slog"

	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PaymentDeliveryJob manages the scheduled delivery of pending payment
// instructions to the payment collaborator. Runs every five seconds; a
// collaborator outage is an expected condition and only logged at warning
// level, since the outbox keeps undelivered instructions pending.
type PaymentDeliveryJob struct {
	handler commands.DeliverPaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentDeliveryJob creates a new job for draining the payment outbox.
func NewPaymentDeliveryJob(handler commands.DeliverPaymentsCommandHandler, logger *slog.Logger) *PaymentDeliveryJob {
	return &PaymentDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_delivery_job"),
	}
}

// Start begins the payment delivery job to run every five seconds.
func (j *PaymentDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDeliverPaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, errs.ErrCollaboratorUnavailable) {
				j.logger.WarnContext(ctx, "Payment collaborator unavailable, will retry", "error", err)
				return
			}
			j.logger.ErrorContext(ctx, "Payment delivery job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment delivery job started (running every five seconds)")
	return nil
}

// Stop stops the payment delivery job.
func (j *PaymentDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment delivery job stopped")
}
