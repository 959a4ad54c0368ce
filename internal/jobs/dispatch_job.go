package jobs

import (
	"context"
	"errors"
	"log/slog"

	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DispatchJob manages the scheduled dispatch of pending orders.
// Runs every second to assign a property company and recycling station to
// the oldest pending order.
type DispatchJob struct {
	handler commands.DispatchOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for dispatching pending orders.
func NewDispatchJob(handler commands.DispatchOrderCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrderFound) &&
				!errors.Is(err, errs.ErrNoCandidateAvailable) {
				j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
