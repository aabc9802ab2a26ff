// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Periodically drains the notification outbox
// and pushes queued entries to connected WebSocket clients
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, batchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" so queued
// notifications reach connected clients within a second of being committed.
//
// # Error Handling
//
// Dispatch failures are logged and retried on the next tick; entries that
// could not be pushed stay queued in the outbox.
package jobs
