package jobs

import (
	"fmt"
	"log/slog"

	"nexa/internal/core/application/usecases/commands"
)

// Schedules holds the cron expressions of the jobs. An empty expression disables a job.
type Schedules struct {
	Reconciliation string
	SessionSweep   string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *OrderReconciliationJob
	sessionSweepJob   *SessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileHandler commands.ReconcileOrdersCommandHandler,
	sweepHandler commands.SweepExpiredSessionsCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationJob: NewOrderReconciliationJob(reconcileHandler, schedules.Reconciliation, logger),
		sessionSweepJob:   NewSessionSweepJob(sweepHandler, schedules.SessionSweep, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	if err := jm.reconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionSweepJob.Stop()
		return fmt.Errorf("failed to start order reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
	jm.sessionSweepJob.Stop()
}
