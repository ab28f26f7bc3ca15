package workerpool

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/awaitpool/internal/testutil"
	"github.com/vnykmshr/awaitpool/pkg/metrics"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
)

func TestMetricsWrapperCountsTasks(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewWithConfigAndMetrics(Config{Workers: 2}, "jobs", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})

	ok := func(args task.Args, kwargs task.Kwargs) (any, error) { return args[0], nil }
	fail := func(args task.Args, kwargs task.Kwargs) (any, error) { return nil, errors.New("boom") }

	for i := 0; i < 3; i++ {
		_, err := p.Submit(ok, i)
		testutil.AssertNoError(t, err)
	}
	_, err := p.Submit(fail)
	testutil.AssertNoError(t, err)

	// Drain so every OnTaskDone hook has fired.
	<-p.Shutdown()

	mp := p.(*metricsPool)
	testutil.AssertEqual(t, promtestutil.ToFloat64(mp.registry.TasksSubmitted.WithLabelValues("jobs")), 4)
	testutil.AssertEqual(t, promtestutil.ToFloat64(mp.registry.TasksCompleted.WithLabelValues("jobs")), 3)
	testutil.AssertEqual(t, promtestutil.ToFloat64(mp.registry.TasksFailed.WithLabelValues("jobs")), 1)
	testutil.AssertEqual(t, promtestutil.ToFloat64(mp.registry.WorkerPoolSize.WithLabelValues("jobs")), 2)

	// One labeled series per pool on the execution histogram.
	testutil.AssertEqual(t, promtestutil.CollectAndCount(mp.registry.TaskExecutionDuration), 1)
}

func TestMetricsWrapperKeepsUserHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	started := make(chan struct{}, 1)
	done := make(chan struct{}, 1)

	p := NewWithConfigAndMetrics(Config{
		Workers:     1,
		OnTaskStart: func(workerID int, t *task.Task) { started <- struct{}{} },
		OnTaskDone:  func(workerID int, t *task.Task) { done <- struct{}{} },
	}, "hooked", metrics.Config{Enabled: true, Registry: reg})
	defer func() { <-p.Shutdown() }()

	_, err := p.Submit(func(args task.Args, kwargs task.Kwargs) (any, error) { return nil, nil })
	testutil.AssertNoError(t, err)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("user OnTaskStart hook never ran")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("user OnTaskDone hook never ran")
	}
}

// The documented default path must reuse the shared registry instead of
// registering a duplicate set of collectors on the default registerer.
func TestMetricsDefaultConfigReusesSharedRegistry(t *testing.T) {
	p := NewWithConfigAndMetrics(Config{Workers: 1}, "default-path", metrics.DefaultConfig())
	defer func() { <-p.Shutdown() }()

	mp := p.(*metricsPool)
	if mp.registry != metrics.DefaultRegistry {
		t.Fatal("default config should report to metrics.DefaultRegistry")
	}

	// Passing the default registerer explicitly takes the same path.
	p2 := NewWithConfigAndMetrics(Config{Workers: 1}, "default-explicit", metrics.Config{
		Enabled:  true,
		Registry: prometheus.DefaultRegisterer,
	})
	defer func() { <-p2.Shutdown() }()

	if p2.(*metricsPool).registry != metrics.DefaultRegistry {
		t.Fatal("default registerer should reuse metrics.DefaultRegistry")
	}
}

func TestMetricsDisabledReturnsPlainPool(t *testing.T) {
	p := NewWithConfigAndMetrics(Config{Workers: 1}, "off", metrics.Config{Enabled: false})
	defer func() { <-p.Shutdown() }()

	if _, ok := p.(*metricsPool); ok {
		t.Fatal("disabled metrics should not wrap the pool")
	}
}
