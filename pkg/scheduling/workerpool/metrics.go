package workerpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/awaitpool/pkg/metrics"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

// NewWithMetrics creates a pool with an unbounded queue that reports to
// a private Prometheus registry under the given pool name.
func NewWithMetrics(size int, name string) Pool {
	registry := prometheus.NewRegistry()
	return NewWithConfigAndMetrics(Config{Workers: size}, name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// NewWithConfigAndMetrics creates a pool with custom config and metrics.
// Instrumentation is attached through the pool's task hooks; any hooks
// already present in the config keep running after the metric updates.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Pool {
	if !metricsConfig.Enabled {
		return NewWithConfig(config)
	}

	// DefaultRegistry already owns the collectors on the default
	// registerer; creating a second set there would panic on duplicate
	// registration.
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil && metricsConfig.Registry != prometheus.DefaultRegisterer {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	userStart := config.OnTaskStart
	userDone := config.OnTaskDone

	// One slot per worker; a worker runs one task at a time and both
	// hooks fire on the worker's own goroutine.
	startTimes := make([]time.Time, config.Workers)

	var p Pool

	config.OnTaskStart = func(workerID int, t *task.Task) {
		startTimes[workerID] = time.Now()
		registry.WorkerPoolActive.WithLabelValues(name).Set(float64(p.ActiveWorkers()))
		registry.WorkerPoolQueued.WithLabelValues(name).Set(float64(p.QueueDepth()))
		if userStart != nil {
			userStart(workerID, t)
		}
	}
	config.OnTaskDone = func(workerID int, t *task.Task) {
		registry.TaskExecutionDuration.WithLabelValues(name).
			Observe(time.Since(startTimes[workerID]).Seconds())
		registry.WorkerPoolActive.WithLabelValues(name).Set(float64(p.ActiveWorkers()))
		registry.WorkerPoolQueued.WithLabelValues(name).Set(float64(p.QueueDepth()))
		if t.Failed() {
			registry.TasksFailed.WithLabelValues(name).Inc()
		} else {
			registry.TasksCompleted.WithLabelValues(name).Inc()
		}
		if userDone != nil {
			userDone(workerID, t)
		}
	}

	p = NewWithConfig(config)

	registry.WorkerPoolSize.WithLabelValues(name).Set(float64(p.Size()))

	return &metricsPool{
		Pool:     p,
		name:     name,
		registry: registry,
	}
}

// metricsPool decorates a Pool with submission-side metric updates; the
// execution side is covered by the task hooks installed above.
type metricsPool struct {
	Pool
	name     string
	registry *metrics.Registry
}

func (mp *metricsPool) Submit(fn task.Func, args ...any) (*task.Task, error) {
	return mp.SubmitNamed(fn, task.Args(args), nil)
}

func (mp *metricsPool) SubmitNamed(fn task.Func, args task.Args, kwargs task.Kwargs) (*task.Task, error) {
	t, err := mp.Pool.SubmitNamed(fn, args, kwargs)
	if err == nil {
		mp.registry.TasksSubmitted.WithLabelValues(mp.name).Inc()
		mp.registry.WorkerPoolQueued.WithLabelValues(mp.name).Set(float64(mp.Pool.QueueDepth()))
	}
	return t, err
}
