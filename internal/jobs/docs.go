// Package jobs provides scheduled background tasks for the storage
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. CreditRetryJob - Runs every thirty seconds to retry mover credits
// that could not be applied when their job completed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed retry bumps the task's attempt counter and leaves it queued;
// the credit and the task removal share one transaction so a credit can
// never land twice.
package jobs
