package jobs

import (
	"context"
	"log/slog"
	"time"

	"nexa/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderReconciliationJob periodically pushes orders captured by the local store to
// the remote store.
type OrderReconciliationJob struct {
	handler  commands.ReconcileOrdersCommandHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderReconciliationJob creates the job. An empty schedule disables it.
func NewOrderReconciliationJob(
	handler commands.ReconcileOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderReconciliationJob {
	return &OrderReconciliationJob{
		handler:  handler,
		schedule: schedule,
		timeout:  time.Minute,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "order_reconciliation_job"),
	}
}

// Start schedules the job.
func (j *OrderReconciliationJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Order reconciliation job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce runs a single reconciliation pass and logs its outcome.
func (j *OrderReconciliationJob) RunOnce(ctx context.Context) commands.ReconcileOrdersResult {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	result, err := j.handler.Handle(ctx, commands.NewReconcileOrdersCommand())
	switch {
	case err != nil:
		j.logger.ErrorContext(ctx, "Order reconciliation failed",
			"pending", result.Pending,
			"pushed", result.Pushed,
			"failed", result.Failed,
			"error", err,
		)
	case result.Pushed > 0:
		j.logger.InfoContext(ctx, "Local orders pushed to remote store", "pushed", result.Pushed)
	}
	return result
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *OrderReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order reconciliation job stopped")
}
