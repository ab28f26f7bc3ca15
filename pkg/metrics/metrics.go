// Package metrics provides Prometheus instrumentation for awaitpool components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for awaitpool components.
type Registry struct {
	// Worker pool metrics
	WorkerPoolSize        *prometheus.GaugeVec
	WorkerPoolActive      *prometheus.GaugeVec
	WorkerPoolQueued      *prometheus.GaugeVec
	TasksSubmitted        *prometheus.CounterVec
	TasksCompleted        *prometheus.CounterVec
	TasksFailed           *prometheus.CounterVec
	TaskExecutionDuration *prometheus.HistogramVec

	// Await bridge metrics
	AwaitDuration *prometheus.HistogramVec
	AwaitPolls    *prometheus.HistogramVec
	ShotsFired    *prometheus.CounterVec

	// Scheduler metrics
	EntriesScheduled *prometheus.CounterVec
	EntriesFired     *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by awaitpool components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		WorkerPoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "size",
				Help:      "Configured worker count",
			},
			[]string{"pool_name"},
		),

		WorkerPoolActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "active_workers",
				Help:      "Number of workers currently executing tasks",
			},
			[]string{"pool_name"},
		),

		WorkerPoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "queued_tasks",
				Help:      "Number of tasks waiting for a worker",
			},
			[]string{"pool_name"},
		),

		TasksSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "tasks_submitted_total",
				Help:      "Total number of tasks submitted",
			},
			[]string{"pool_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "tasks_completed_total",
				Help:      "Total number of tasks completed successfully",
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks that finished with an error",
			},
			[]string{"pool_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "awaitpool",
				Subsystem: "workerpool",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		AwaitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "awaitpool",
				Subsystem: "await",
				Name:      "duration_seconds",
				Help:      "Time from submission to resolution of awaited calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"room"},
		),

		AwaitPolls: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "awaitpool",
				Subsystem: "await",
				Name:      "polls_per_call",
				Help:      "Number of readiness checks per awaited call",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"room"},
		),

		ShotsFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "await",
				Name:      "shots_total",
				Help:      "Total number of fire-and-forget submissions",
			},
			[]string{"room"},
		),

		EntriesScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "scheduler",
				Name:      "entries_scheduled_total",
				Help:      "Total number of entries scheduled",
			},
			[]string{"scheduler_name"},
		),

		EntriesFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awaitpool",
				Subsystem: "scheduler",
				Name:      "entries_fired_total",
				Help:      "Total number of entries submitted to a pool",
			},
			[]string{"scheduler_name"},
		),
	}
}
