// Package metrics holds the Prometheus collectors shared by the HTTP adapter
// and the background jobs.
//
// Collectors are registered on the Registerer passed to New, so tests can use
// a fresh prometheus.NewRegistry() per case.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fulfillment"

type Metrics struct {
	HTTPRequests *prometheus.HistogramVec

	Allocations         prometheus.Counter
	Backorders          prometheus.Counter
	ExpiredReleases     prometheus.Counter
	BackordersFulfilled prometheus.Counter

	Picks          *prometheus.CounterVec
	PickExceptions *prometheus.CounterVec
	Verifications  *prometheus.CounterVec
	LoadRejections *prometheus.CounterVec
	DockConflicts  prometheus.Counter
	RateShops      *prometheus.CounterVec

	JobRuns *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by method, route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		Allocations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_created_total",
			Help:      "Inventory allocations created.",
		}),
		Backorders: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backorders_created_total",
			Help:      "Backorders opened for unallocated quantity.",
		}),
		ExpiredReleases: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_expired_total",
			Help:      "Allocations released by the expiry sweep.",
		}),
		BackordersFulfilled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backorders_fulfilled_total",
			Help:      "Backorders that received new allocations.",
		}),

		Picks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_total",
			Help:      "Pick confirmations by outcome.",
		}, []string{"outcome"}),
		PickExceptions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pick_exceptions_total",
			Help:      "Pick exceptions by type.",
		}, []string{"type"}),
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carton_verifications_total",
			Help:      "Carton verifications by result.",
		}, []string{"status"}),
		LoadRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_assignment_rejections_total",
			Help:      "Shipment assignments rejected by reason.",
		}, []string{"reason"}),
		DockConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dock_schedule_conflicts_total",
			Help:      "Dock bookings refused because of an overlapping window.",
		}),
		RateShops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_shops_total",
			Help:      "Rate shopping requests by outcome.",
		}, []string{"outcome"}),

		JobRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Background job runs by job and result.",
		}, []string{"job", "result"}),
	}
}
