/*
Package scheduler submits task functions to worker pools at a point in
time, on a fixed interval, or on a cron expression.

It is a thin timing layer over the pool: when an entry comes due, the
scheduler submits the captured function and arguments exactly as a
direct caller would, and the execution outcome lands on a task handle
inside the pool like any other submission.

	s := scheduler.NewWithConfig(scheduler.Config{
		Registry: reg,
		Room:     "maintenance",
	})
	if err := s.Start(); err != nil {
		log.Fatal(err)
	}
	defer func() { <-s.Stop() }()

	_ = s.ScheduleRepeating("compact", compactFn, time.Minute)
	_ = s.ScheduleCron("nightly-report", "0 3 * * *", reportFn, "full")

Entries are identified by ID; scheduling a duplicate ID fails until the
existing entry is cancelled. One-time entries remove themselves after
firing, repeating and cron entries re-arm.
*/
package scheduler
