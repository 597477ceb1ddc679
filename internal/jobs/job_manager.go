package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs  []namedJob
	alive []namedJob
}

type namedJob struct {
	name string
	job  Job
}

func NewJobManager(
	expiredAllocations *ExpiredAllocationsJob,
	backorderFulfillment *BackorderFulfillmentJob,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "expired allocations", job: expiredAllocations},
			{name: "backorder fulfillment", job: backorderFulfillment},
		},
	}
}

// StartAll starts every job. If one fails to start, the jobs already
// running are stopped.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.alive = append(jm.alive, nj)
	}
	return nil
}

// StopAll stops the running jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.alive) - 1; i >= 0; i-- {
		jm.alive[i].job.Stop()
	}
	jm.alive = nil
}

// newCron builds a seconds-resolution scheduler that skips a tick while the
// previous run is still in progress.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
