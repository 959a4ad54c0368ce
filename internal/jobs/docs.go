// Package jobs provides scheduled background tasks for the waste pickup system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every second to assign a property company and recycling station to pending orders
// 2. SettlementJob - Runs every second to price and close weighed orders
// 3. PaymentDeliveryJob - Runs every five seconds to deliver refund/charge instructions to the payment collaborator
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, settleHandler, deliverHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Dispatch job ignores expected business errors (no pending orders, empty candidate pools)
//   - Settlement job logs all errors as they indicate system issues
//   - Payment delivery treats collaborator outages as retryable and only warns
//   - Failed job starts will stop any already running jobs
package jobs
