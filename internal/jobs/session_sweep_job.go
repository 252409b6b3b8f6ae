package jobs

import (
	"context"
	"log/slog"

	"nexa/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweepJob removes idle checkout sessions and expired admin sessions.
type SessionSweepJob struct {
	handler  commands.SweepExpiredSessionsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweepJob creates the job. An empty schedule disables it.
func NewSessionSweepJob(
	handler commands.SweepExpiredSessionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SessionSweepJob {
	return &SessionSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Start schedules the job.
func (j *SessionSweepJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Session sweep job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started", "schedule", j.schedule)
	return nil
}

// RunOnce sweeps both session registries once.
func (j *SessionSweepJob) RunOnce(ctx context.Context) commands.SweepExpiredSessionsResult {
	result, err := j.handler.Handle(ctx, commands.NewSweepExpiredSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep failed", "error", err)
	}
	if result.Checkouts > 0 || result.AdminSessions > 0 {
		j.logger.DebugContext(ctx, "Expired sessions removed",
			"checkouts", result.Checkouts,
			"admin_sessions", result.AdminSessions,
		)
	}
	return result
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
