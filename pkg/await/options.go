package await

import (
	"time"

	"github.com/vnykmshr/awaitpool/pkg/common/validation"
	"github.com/vnykmshr/awaitpool/pkg/config"
	"github.com/vnykmshr/awaitpool/pkg/metrics"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/room"
)

// options is the per-wrapper configuration, captured once at Wrap or
// Shoot time. Individual calls of a wrapped function share it.
type options struct {
	delay    time.Duration
	room     string
	registry *room.Registry
	metrics  *metrics.Registry
}

// Option configures a wrapped function.
type Option func(*options)

// WithDelay sets the suspension interval between readiness checks.
// Must be positive. Defaults to the configured poll delay at wrap time.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// WithRoom names the registry room whose pool executes the wrapped
// function. Defaults to room.DefaultRoom.
func WithRoom(name string) Option {
	return func(o *options) {
		o.room = name
	}
}

// WithRegistry injects the registry used to resolve the room. Defaults
// to room.Default(). Injecting a private registry isolates the wrapped
// function from process-global pools.
func WithRegistry(r *room.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithMetrics enables Prometheus observation of awaited calls and shots
// on the given metrics registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// newOptions applies opts over the wrap-time defaults and validates the
// result. Misconfiguration is reported here, synchronously, never at
// call time.
func newOptions(opts []Option) (options, error) {
	o := options{
		delay: config.Current().PollDelay,
		room:  room.DefaultRoom,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validation.ValidatePositiveDuration("await", "delay", o.delay); err != nil {
		return options{}, err
	}
	if err := validation.ValidateNotEmpty("await", "room", o.room); err != nil {
		return options{}, err
	}

	if o.registry == nil {
		o.registry = room.Default()
	}
	return o, nil
}
