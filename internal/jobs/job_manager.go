package jobs

import (
	"fmt"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	matchingJob   *MatchingJob
	invitationJob *InvitationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factories and command handlers as dependencies
// to wire up the job execution.
func NewJobManager(
	shipmentRequestUoWFactory commands.ShipmentRequestUoWFactory,
	dispatchUoWFactory commands.DispatchUoWFactory,
	matchingHandler commands.RunMatchingCommandHandler,
	dispatchHandler commands.DispatchInvitationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		matchingJob:   NewMatchingJob(shipmentRequestUoWFactory, matchingHandler, logger),
		invitationJob: NewInvitationJob(dispatchUoWFactory, dispatchHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.matchingJob.Start(); err != nil {
		return fmt.Errorf("failed to start matching job: %w", err)
	}

	if err := jm.invitationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.matchingJob.Stop()
		return fmt.Errorf("failed to start invitation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invitationJob.Stop()
	jm.matchingJob.Stop()
}
