// Package jobs provides scheduled background tasks for the order admission engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. StalePendingJob - Runs every five minutes to remind kitchens about orders sitting in Pending status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(notifyStalePendingHandler, logger)
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
// The sweep uses the "@every 5m" schedule. Pending orders hold their
// capacity slot until the kitchen confirms or cancels, so the sweep only
// notifies; it never expires an order.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - A failed publish for one order does not stop the rest of the sweep
package jobs
