// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Reconciles shipped orders whose delivery assignment
// was confirmed delivered by the rider, advancing them to Delivered.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDeliveredHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The completion job takes a six-field cron expression from configuration,
// so operators can tune the reconciliation cadence without a redeploy.
//
// # Error Handling
//
// The completion job processes each candidate order in its own transaction;
// per-order failures are logged inside the command handler and do not abort
// the sweep. Only a failure to read the candidate set reaches the job log.
package jobs
