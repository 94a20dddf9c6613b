package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// MatchingJob manages the scheduled matching of shipment requests against the
// carrier pool. Runs every five seconds and processes the oldest request that
// is ready: status New with an accepted quote.
type MatchingJob struct {
	uowFactory commands.ShipmentRequestUoWFactory
	handler    commands.RunMatchingCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewMatchingJob creates a new job for running the matching pipeline.
// Uses RunMatchingCommandHandler to process one request per tick.
func NewMatchingJob(
	uowFactory commands.ShipmentRequestUoWFactory,
	handler commands.RunMatchingCommandHandler,
	logger *slog.Logger,
) *MatchingJob {
	return &MatchingJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "matching_job"),
	}
}

// Start begins the matching job to run every five seconds.
func (j *MatchingJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		request, err := j.uowFactory.Create().ShipmentRequestRepository().GetFirstAwaitingMatching(ctx)
		if err != nil {
			// An empty queue is the normal idle state, not a failure
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Matching job failed to find next request", "error", err)
			}
			return
		}

		cmd, err := commands.NewRunMatchingCommand(request.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Matching job failed to build command", "error", err)
			return
		}

		matched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Matching run failed",
				"requestId", request.ID().String(), "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Matching run completed",
			"requestId", request.ID().String(), "matches", matched)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Matching job started (running every 5 seconds)")
	return nil
}

// Stop stops the matching job.
func (j *MatchingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Matching job stopped")
}
