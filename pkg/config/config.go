package config

import (
	"sync/atomic"
	"time"

	"github.com/vnykmshr/awaitpool/pkg/common/validation"
)

// Settings holds the process-wide defaults read by pools and bridges at
// construction time. Changing settings afterward does not affect
// already-constructed pools or wrapped functions.
type Settings struct {
	// PoolSize is the worker count used for pools created without an
	// explicit size, including every room the default registry creates.
	PoolSize int

	// PollDelay is the default suspension interval between readiness
	// checks in the await bridge.
	PollDelay time.Duration
}

const (
	// DefaultPoolSize is the worker count used until Set overrides it.
	DefaultPoolSize = 10

	// DefaultPollDelay is the poll interval used until Set overrides it.
	DefaultPollDelay = time.Millisecond
)

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		PoolSize:  DefaultPoolSize,
		PollDelay: DefaultPollDelay,
	}
}

var current atomic.Pointer[Settings]

func init() {
	s := Default()
	current.Store(&s)
}

// Current returns a snapshot of the process-wide settings.
func Current() Settings {
	return *current.Load()
}

// Option mutates a Settings value inside Set.
type Option func(*Settings)

// WithPoolSize sets the default worker count for pools created after
// this call.
func WithPoolSize(size int) Option {
	return func(s *Settings) {
		s.PoolSize = size
	}
}

// WithPollDelay sets the default poll interval for functions wrapped
// after this call.
func WithPollDelay(delay time.Duration) Option {
	return func(s *Settings) {
		s.PollDelay = delay
	}
}

// Set applies the given options to the process-wide settings. The whole
// update is rejected if any resulting field is invalid, so settings
// never hold an unusable value.
func Set(opts ...Option) error {
	next := Current()
	for _, opt := range opts {
		opt(&next)
	}

	if err := validation.ValidatePositive("config", "pool_size", next.PoolSize); err != nil {
		return err
	}
	if err := validation.ValidatePositiveDuration("config", "delay", next.PollDelay); err != nil {
		return err
	}

	current.Store(&next)
	return nil
}

// Reset restores the built-in defaults. Intended for tests.
func Reset() {
	s := Default()
	current.Store(&s)
}
