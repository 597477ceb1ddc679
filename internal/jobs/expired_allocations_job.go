package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type ReleaseExpiredHandler interface {
	Handle(ctx context.Context, cmd commands.ReleaseExpiredAllocationsCommand) ([]kernel.UUID, error)
}

// ExpiredAllocationsJob returns the stock of expired allocations to
// inventory. Each run releases at most batch allocations.
type ExpiredAllocationsJob struct {
	handler ReleaseExpiredHandler
	batch   int
	spec    string
	cron    *cron.Cron
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewExpiredAllocationsJob(
	handler ReleaseExpiredHandler,
	batch int,
	spec string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ExpiredAllocationsJob {
	return &ExpiredAllocationsJob{
		handler: handler,
		batch:   batch,
		spec:    spec,
		cron:    newCron(),
		metrics: m,
		logger:  logger.With("component", "expired_allocations_job"),
	}
}

// Start schedules the sweep.
func (j *ExpiredAllocationsJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired allocations job started", "schedule", j.spec)
	return nil
}

// RunOnce performs a single sweep. Allocations that failed to release stay
// allocated and are retried on the next run.
func (j *ExpiredAllocationsJob) RunOnce(ctx context.Context) error {
	cmd, err := commands.NewReleaseExpiredAllocationsCommand(j.batch)
	if err != nil {
		return err
	}

	released, err := j.handler.Handle(ctx, cmd)
	j.metrics.ExpiredReleases.Add(float64(len(released)))
	if len(released) > 0 {
		j.logger.InfoContext(ctx, "Released expired allocations", "count", len(released))
	}
	if err != nil {
		j.metrics.JobRuns.WithLabelValues("expired_allocations", "error").Inc()
		j.logger.ErrorContext(ctx, "Expired allocations job failed", "error", err)
		return err
	}

	j.metrics.JobRuns.WithLabelValues("expired_allocations", "ok").Inc()
	return nil
}

// Stop waits for a running sweep to finish.
func (j *ExpiredAllocationsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expired allocations job stopped")
}
