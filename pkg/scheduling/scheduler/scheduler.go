package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/awaitpool/pkg/common/validation"
	"github.com/vnykmshr/awaitpool/pkg/metrics"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/room"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/task"
	"github.com/vnykmshr/awaitpool/pkg/scheduling/workerpool"
)

// Entry describes a scheduled submission.
type Entry struct {
	ID       string
	RunAt    time.Time
	Interval time.Duration // Zero for one-time entries
	Created  time.Time
}

// Scheduler submits task functions to a worker pool at a point in time,
// on an interval, or on a cron expression. Fired entries go through the
// normal pool path, so each execution carries its outcome on a regular
// task handle inside the pool.
type Scheduler interface {
	// Basic scheduling
	Schedule(id string, fn task.Func, runAt time.Time, args ...any) error
	ScheduleAfter(id string, fn task.Func, delay time.Duration, args ...any) error
	ScheduleRepeating(id string, fn task.Func, interval time.Duration, args ...any) error

	// Cron scheduling; supports the standard five-field format plus
	// descriptors such as "@hourly".
	ScheduleCron(id string, cronExpr string, fn task.Func, args ...any) error

	// Entry management
	Cancel(id string) bool
	CancelAll()
	List() []Entry

	// Lifecycle
	Start() error
	Stop() <-chan struct{}
}

// Config holds scheduler configuration.
type Config struct {
	// Pool receives fired entries. When nil, the scheduler resolves a
	// pool from Registry and Room instead.
	Pool workerpool.Pool

	// Registry and Room name the pool to use when Pool is nil.
	// Registry defaults to room.Default(), Room to room.DefaultRoom.
	Registry *room.Registry
	Room     string

	// Location is the timezone for cron evaluation. Defaults to time.Local.
	Location *time.Location

	// TickInterval is how often the scheduler checks for due entries.
	// Defaults to 50ms.
	TickInterval time.Duration

	// MaxEntries caps the number of simultaneously scheduled entries.
	// Defaults to 10000.
	MaxEntries int

	// Metrics, when set together with Name, counts scheduled and fired
	// entries on the given registry.
	Metrics *metrics.Registry
	Name    string
}

type entry struct {
	id           string
	fn           task.Func
	args         task.Args
	runAt        time.Time
	interval     time.Duration
	cronSchedule cron.Schedule
	created      time.Time
}

type scheduler struct {
	pool         workerpool.Pool
	location     *time.Location
	tickInterval time.Duration
	maxEntries   int
	cronParser   cron.Parser
	metrics      *metrics.Registry
	name         string

	mu       sync.RWMutex
	entries  map[string]*entry
	ticker   *time.Ticker
	done     chan struct{}
	loopDone chan struct{}
	running  bool
}

// New creates a scheduler with default configuration, firing into the
// default registry's base room.
func New() Scheduler {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a scheduler with custom configuration.
func NewWithConfig(cfg Config) Scheduler {
	pool := cfg.Pool
	if pool == nil {
		registry := cfg.Registry
		if registry == nil {
			registry = room.Default()
		}
		name := cfg.Room
		if name == "" {
			name = room.DefaultRoom
		}
		pool = registry.Get(name)
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = 50 * time.Millisecond
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 10000
	}

	return &scheduler{
		pool:         pool,
		location:     location,
		tickInterval: tickInterval,
		maxEntries:   maxEntries,
		cronParser:   cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		metrics:      cfg.Metrics,
		name:         cfg.Name,
		entries:      make(map[string]*entry),
	}
}

// validateEntry covers the checks every Schedule variant shares.
func (s *scheduler) validateEntry(id string, fn task.Func) error {
	if err := validation.ValidateNotEmpty("scheduler", "id", id); err != nil {
		return err
	}
	if len(id) > 255 {
		return fmt.Errorf("entry ID too long (max 255 characters)")
	}
	if fn == nil {
		return validation.ValidateNotNil("scheduler", "fn", nil)
	}
	return nil
}

// add registers e, enforcing ID uniqueness and the entry cap.
func (s *scheduler) add(e *entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[e.id]; exists {
		return fmt.Errorf("entry with ID %q already exists, cancel it first", e.id)
	}
	if len(s.entries) >= s.maxEntries {
		return fmt.Errorf("cannot schedule entry: maximum number of entries (%d) reached", s.maxEntries)
	}

	s.entries[e.id] = e
	if s.metrics != nil {
		s.metrics.EntriesScheduled.WithLabelValues(s.name).Inc()
	}
	return nil
}

func (s *scheduler) Schedule(id string, fn task.Func, runAt time.Time, args ...any) error {
	if err := s.validateEntry(id, fn); err != nil {
		return err
	}
	if runAt.IsZero() {
		return fmt.Errorf("entry run time cannot be zero")
	}

	return s.add(&entry{
		id:      id,
		fn:      fn,
		args:    task.Args(args),
		runAt:   runAt,
		created: time.Now(),
	})
}

func (s *scheduler) ScheduleAfter(id string, fn task.Func, delay time.Duration, args ...any) error {
	return s.Schedule(id, fn, time.Now().Add(delay), args...)
}

func (s *scheduler) ScheduleRepeating(id string, fn task.Func, interval time.Duration, args ...any) error {
	if err := s.validateEntry(id, fn); err != nil {
		return err
	}
	if err := validation.ValidatePositiveDuration("scheduler", "interval", interval); err != nil {
		return err
	}

	now := time.Now()
	return s.add(&entry{
		id:       id,
		fn:       fn,
		args:     task.Args(args),
		runAt:    now,
		interval: interval,
		created:  now,
	})
}

func (s *scheduler) ScheduleCron(id string, cronExpr string, fn task.Func, args ...any) error {
	if err := s.validateEntry(id, fn); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("scheduler", "cron", cronExpr); err != nil {
		return err
	}

	schedule, err := s.cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	now := time.Now()
	return s.add(&entry{
		id:           id,
		fn:           fn,
		args:         task.Args(args),
		runAt:        schedule.Next(now.In(s.location)),
		cronSchedule: schedule,
		created:      now,
	})
}

func (s *scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		delete(s.entries, id)
		return true
	}
	return false
}

func (s *scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
}

func (s *scheduler) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, Entry{
			ID:       e.id,
			RunAt:    e.runAt,
			Interval: e.interval,
			Created:  e.created,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RunAt.Before(entries[j].RunAt)
	})

	return entries
}

func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running, call Stop() first")
	}

	s.running = true
	s.ticker = time.NewTicker(s.tickInterval)
	s.done = make(chan struct{})
	s.loopDone = make(chan struct{})

	go s.run(s.done, s.loopDone, s.ticker)
	return nil
}

func (s *scheduler) Stop() <-chan struct{} {
	s.mu.Lock()
	var loopDone chan struct{}
	if s.running {
		s.running = false
		close(s.done)
		s.ticker.Stop()
		loopDone = s.loopDone
	}
	s.mu.Unlock()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if loopDone != nil {
			<-loopDone
		}
	}()
	return stopped
}

func (s *scheduler) run(done <-chan struct{}, loopDone chan<- struct{}, ticker *time.Ticker) {
	defer close(loopDone)
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.fireDueEntries()
		}
	}
}

func (s *scheduler) fireDueEntries() {
	now := time.Now()

	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}

	due := make([]*entry, 0, len(s.entries))
	for id, e := range s.entries {
		if now.Before(e.runAt) {
			continue
		}
		due = append(due, e)

		switch {
		case e.interval > 0:
			e.runAt = now.Add(e.interval)
		case e.cronSchedule != nil:
			e.runAt = e.cronSchedule.Next(now.In(s.location))
		default:
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, e := range due {
		if _, err := s.pool.Submit(e.fn, e.args...); err != nil {
			// Pool shut down beneath the scheduler; keep ticking, the
			// remaining entries may target a pool that still accepts.
			continue
		}
		if s.metrics != nil {
			s.metrics.EntriesFired.WithLabelValues(s.name).Inc()
		}
	}
}
