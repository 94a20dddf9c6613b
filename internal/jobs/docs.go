// Package jobs provides scheduled background tasks for the freight matching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the matching pipeline.
//
// # Available Jobs
//
// 1. MatchingJob - Runs every five seconds to run carrier matching for the oldest shipment request with an accepted quote
// 2. InvitationJob - Runs every five seconds to dispatch transport invitations for freshly created match records
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required factories and handlers
//	jobManager := jobs.NewJobManager(requestUoWFactory, dispatchUoWFactory, matchingHandler, dispatchHandler, logger)
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
// Both jobs use the cron expression "*/5 * * * * *" which means they run every
// five seconds. Matching and dispatch are idempotent per request, so an overlap
// between ticks only results in no-op runs.
//
// # Error Handling
//
// - Matching job treats "no request awaiting matching" as the normal idle state and stays silent
// - Invitation job logs dispatch failures per request and continues with the remaining requests
// - Failed job starts will stop any already running jobs
package jobs
