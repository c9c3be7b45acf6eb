package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingJob *StalePendingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	notifyStalePendingHandler commands.NotifyStalePendingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingJob: NewStalePendingJob(notifyStalePendingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingJob.Stop()
}
