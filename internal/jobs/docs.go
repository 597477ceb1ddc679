// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are built on github.com/robfig/cron/v3 with second resolution. A tick
// is skipped while the previous run of the same job is still in progress.
//
// # Available Jobs
//
// 1. ExpiredAllocationsJob - releases allocations whose hold time has passed
// and returns their stock to inventory, a bounded batch per run
// 2. BackorderFulfillmentJob - retries auto-fulfill backorders in every
// warehouse that has any pending
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expiredJob, backorderJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that fails is logged and counted in fulfillment_jobs_runs_total with
// result="error"; the next tick tries again. Work completed before the
// failure is kept.
package jobs
