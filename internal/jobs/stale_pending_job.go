package jobs

import (
	"context"
	"log/slog"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePendingJob periodically sweeps for orders stuck in Pending status
// and reminds their kitchens to confirm or cancel them. Pending orders hold
// capacity until a kitchen decides, so a forgotten one blocks a slot.
type StalePendingJob struct {
	handler commands.NotifyStalePendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingJob creates a new job for the stale pending sweep.
// Uses NotifyStalePendingCommandHandler to nudge kitchens every five minutes.
func NewStalePendingJob(handler commands.NotifyStalePendingCommandHandler, logger *slog.Logger) *StalePendingJob {
	return &StalePendingJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_pending_job"),
	}
}

// Start begins the stale pending sweep to run every five minutes.
func (j *StalePendingJob) Start() error {
	_, err := j.cron.AddFunc("@every 5m", func() {
		ctx := context.Background()
		cmd := commands.NewNotifyStalePendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale pending sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending job started (running every five minutes)")
	return nil
}

// Stop stops the stale pending sweep.
func (j *StalePendingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending job stopped")
}
