package jobs

import (
	"fmt"
	"log/slog"

	"fixmate/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	requestDispatchJob *RequestDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchPendingRequestCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestDispatchJob: NewRequestDispatchJob(dispatchHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.requestDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start request dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.requestDispatchJob.Stop()
}
