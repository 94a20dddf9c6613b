package jobs

import (
	"context"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvitationJob manages the scheduled dispatch of carrier invitations. Runs
// every five seconds and re-queries which requests have undispatched match
// records instead of trusting any in-memory list from the matching run, so a
// crash between matching and dispatch loses nothing.
type InvitationJob struct {
	uowFactory commands.DispatchUoWFactory
	handler    commands.DispatchInvitationsCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewInvitationJob creates a new job for dispatching carrier invitations.
// Uses DispatchInvitationsCommandHandler to process one request at a time.
func NewInvitationJob(
	uowFactory commands.DispatchUoWFactory,
	handler commands.DispatchInvitationsCommandHandler,
	logger *slog.Logger,
) *InvitationJob {
	return &InvitationJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "invitation_job"),
	}
}

// Start begins the invitation job to run every five seconds.
func (j *InvitationJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		requestIDs, err := j.uowFactory.Create().CarrierRequestRepository().GetRequestIDsWithNewMatches(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invitation job failed to find pending requests", "error", err)
			return
		}

		for _, requestID := range requestIDs {
			cmd, cmdErr := commands.NewDispatchInvitationsCommand(requestID)
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Invitation job failed to build command",
					"requestId", requestID.String(), "error", cmdErr)
				continue
			}

			sent, dispatchErr := j.handler.Handle(ctx, cmd)
			if dispatchErr != nil {
				// One failing request must not stall the others
				j.logger.ErrorContext(ctx, "Invitation dispatch failed",
					"requestId", requestID.String(), "error", dispatchErr)
				continue
			}

			if sent > 0 {
				j.logger.InfoContext(ctx, "Invitations dispatched",
					"requestId", requestID.String(), "invitations", sent)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invitation job started (running every 5 seconds)")
	return nil
}

// Stop stops the invitation job.
func (j *InvitationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invitation job stopped")
}
