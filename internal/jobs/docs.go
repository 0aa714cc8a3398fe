// Package jobs provides scheduled background tasks for the order intake system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the production forecasting engine.
//
// # Available Jobs
//
// 1. ModelTrainingJob - Runs nightly to refresh the duration model from the
// accumulated delivery history
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(trainModelHandler, logger)
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
// The training job uses the cron expression "0 0 2 * * *", running once per
// day at 02:00. Training also happens on demand (the retrain endpoint) and
// after each delivery; the nightly run only guarantees a fresh model when the
// intake is quiet.
//
// # Error Handling
//
// - Training runs with too little delivery history are an expected scenario
//   and are not logged as errors
// - All other failures are logged and retried on the next scheduled run
package jobs
