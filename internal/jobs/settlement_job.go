package jobs

import (
	"context"
	"log/slog"

	"wastehaul/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SettlementJob manages the scheduled finalization of weighed orders.
// Runs every second so a weighed order is priced and closed promptly, and
// re-runs pick up anything a crash left unfinalized.
type SettlementJob struct {
	handler commands.SettleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementJob creates a new job for settling weighed orders.
func NewSettlementJob(handler commands.SettleOrdersCommandHandler, logger *slog.Logger) *SettlementJob {
	return &SettlementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "settlement_job"),
	}
}

// Start begins the settlement job to run every second.
func (j *SettlementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSettleOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Settlement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement job started (running every second)")
	return nil
}

// Stop stops the settlement job.
func (j *SettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement job stopped")
}
