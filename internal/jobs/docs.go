// Package jobs provides scheduled background tasks for the service platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for request coordination.
//
// # Available Jobs
//
// 1. RequestDispatchJob - Runs every second to assign pending service requests to available providers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps newly opened requests from waiting long
// for an eligible provider.
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no pending requests, no available providers)
// - Any other error is logged as it indicates a system issue
// - Failed job starts will stop any already running jobs
package jobs
