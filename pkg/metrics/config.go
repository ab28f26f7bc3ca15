package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry is the Prometheus registerer collectors are created on.
	// Leave nil to report to DefaultRegistry, whose collectors are
	// already registered on prometheus.DefaultRegisterer; registering a
	// second set there would panic.
	Registry prometheus.Registerer
}

// DefaultConfig returns a configuration that reports to DefaultRegistry.
func DefaultConfig() Config {
	return Config{Enabled: true}
}
