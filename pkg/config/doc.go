/*
Package config holds the process-wide defaults shared by the awaitpool
components: the worker count for implicitly created pools and the poll
interval for the await bridge.

Settings are read at the moment a pool or wrapped function is
constructed. They are snapshots, not live references:

	_ = config.Set(config.WithPoolSize(20), config.WithPollDelay(5*time.Millisecond))

	// Rooms created from here on get 20 workers; pools created before
	// the call keep their original size.
	pool := room.Default().Get("crunch")
	_ = pool

Invalid values are rejected synchronously and leave the previous
settings untouched:

	if err := config.Set(config.WithPollDelay(-time.Second)); err != nil {
		// err matches errors.ErrInvalidConfiguration
	}
*/
package config
