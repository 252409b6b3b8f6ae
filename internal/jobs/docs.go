// Package jobs provides scheduled background tasks for the order intake service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderReconciliationJob - pushes orders kept by the local store to the remote store
// 2. SessionSweepJob - drops idle checkout sessions and expired admin sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, sweepHandler, jobs.Schedules{
//		Reconciliation: "@every 1m",
//		SessionSweep:   "@every 5m",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five field cron syntax or descriptors such as
// "@every 1m". An empty schedule disables the job. A reconciliation pass that is
// still running when the next one is due is skipped.
//
// # Error Handling
//
// - Reconciliation failures are logged; orders that could not be pushed stay local
// - An invalid schedule fails StartAll and stops any job already started
package jobs
