package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fixmate/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RequestDispatchJob manages the scheduled dispatch of pending service requests.
// Runs every second to match pending requests with available providers.
type RequestDispatchJob struct {
	handler commands.DispatchPendingRequestCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRequestDispatchJob creates a new job for dispatching pending requests.
// Uses DispatchPendingRequestCommandHandler to process one request per tick.
func NewRequestDispatchJob(handler commands.DispatchPendingRequestCommandHandler, logger *slog.Logger) *RequestDispatchJob {
	return &RequestDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "request_dispatch_job"),
	}
}

// Start begins the request dispatch job to run every second.
func (j *RequestDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingRequestCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingRequests) && !errors.Is(err, commands.ErrNoAvailableProviders) {
				j.logger.ErrorContext(ctx, "Request dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request dispatch job started (running every second)")
	return nil
}

// Stop stops the request dispatch job.
func (j *RequestDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Request dispatch job stopped")
}
