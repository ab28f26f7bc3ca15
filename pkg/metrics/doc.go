/*
Package metrics provides Prometheus instrumentation for awaitpool: worker
pool gauges and counters, await bridge latency and poll-count histograms,
and scheduler counters.

Components take metrics as an opt-in wrapper or option rather than
instrumenting unconditionally:

	pool := workerpool.NewWithMetrics(8, "crunch")

	wrapped, err := await.Wrap(fn,
		await.WithRoom("crunch"),
		await.WithMetrics(metrics.DefaultRegistry),
	)

Use NewRegistry with a private prometheus.Registry to keep a component's
metrics out of the process-global registerer, e.g. in tests.
*/
package metrics
