package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type FulfillBackordersHandler interface {
	Handle(ctx context.Context, cmd commands.FulfillBackordersCommand) ([]commands.BackOrderFulfillment, error)
}

// BackorderFulfillmentJob retries the auto-fulfill backorders of every
// warehouse that has any pending.
type BackorderFulfillmentJob struct {
	handler FulfillBackordersHandler
	ttl     time.Duration
	spec    string
	cron    *cron.Cron
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewBackorderFulfillmentJob creates the job. A zero ttl leaves the hold
// time to the handler's default.
func NewBackorderFulfillmentJob(
	handler FulfillBackordersHandler,
	ttl time.Duration,
	spec string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *BackorderFulfillmentJob {
	return &BackorderFulfillmentJob{
		handler: handler,
		ttl:     ttl,
		spec:    spec,
		cron:    newCron(),
		metrics: m,
		logger:  logger.With("component", "backorder_fulfillment_job"),
	}
}

func (j *BackorderFulfillmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backorder fulfillment job started", "schedule", j.spec)
	return nil
}

func (j *BackorderFulfillmentJob) RunOnce(ctx context.Context) error {
	cmd, err := commands.NewFulfillBackordersCommand(kernel.UUID{}, j.ttl)
	if err != nil {
		return err
	}

	fulfilled, err := j.handler.Handle(ctx, cmd)
	j.metrics.BackordersFulfilled.Add(float64(len(fulfilled)))
	for _, f := range fulfilled {
		j.logger.InfoContext(ctx, "Backorder received stock",
			"backorder_id", f.BackOrderID.String(),
			"quantity", f.Fulfilled.String(),
			"status", f.Status.String())
	}
	if err != nil {
		j.metrics.JobRuns.WithLabelValues("backorder_fulfillment", "error").Inc()
		j.logger.ErrorContext(ctx, "Backorder fulfillment job failed", "error", err)
		return err
	}

	j.metrics.JobRuns.WithLabelValues("backorder_fulfillment", "ok").Inc()
	return nil
}

func (j *BackorderFulfillmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backorder fulfillment job stopped")
}
