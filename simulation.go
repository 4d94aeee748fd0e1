// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import (
	"log/slog"

	"github.com/google/uuid"
)

// Simulation is the entry point of a discrete-event simulation: it owns the
// virtual clock, the future event list, and every event and process ever
// created through it. It is not safe for concurrent use from multiple
// goroutines; the kernel is single-threaded by design. The only other
// goroutines in play are the cooperative Process coroutines it itself
// starts and resumes one at a time.
type Simulation struct {
	ID string

	now    SimTime
	queue  *fel
	logger *slog.Logger

	// shutdown is closed by Close to unblock any Process goroutine still
	// parked in Wait, so it can runtime.Goexit() instead of leaking.
	shutdown chan struct{}
	closed   bool
}

// Option configures a Simulation at construction time.
type Option func(*Simulation)

// WithLogger overrides the simulation's logger. Defaults to DefaultLogger,
// which discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// NewSimulation creates a Simulation with now = 0 and an empty future event
// list.
func NewSimulation(opts ...Option) *Simulation {
	s := &Simulation{
		ID:       uuid.NewString(),
		queue:    newFEL(),
		logger:   DefaultLogger,
		shutdown: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("simulation created", "sim_id", s.ID)
	return s
}

// Now returns the current virtual simulation time.
func (s *Simulation) Now() SimTime { return s.now }

// Event returns a fresh Pending event bound to this simulation.
func (s *Simulation) Event() *Event {
	return newEvent(s)
}

// Timeout returns a fresh event already triggered with the given delay.
// delay must be non-negative; a negative delay is a programmer error and
// panics, the same way a constant out-of-range argument would elsewhere in
// this API.
func (s *Simulation) Timeout(delay SimTime) *Event {
	e := s.Event()
	if err := e.Trigger(delay); err != nil {
		panic(err)
	}
	return e
}

// schedule inserts ev into the future event list at now+delay and logs the
// scheduling decision. Negative delays are rejected by the caller (Event.
// Trigger) before schedule is ever reached.
func (s *Simulation) schedule(ev *Event, delay SimTime) {
	at := s.now + delay
	seq := s.queue.schedule(ev, at)
	s.logger.Debug("event scheduled", "sim_id", s.ID, "time", at, "seq", seq)
}

// Step pops the single earliest-queued event, advances now to its time,
// and dispatches it. It returns false if the future event list was empty.
func (s *Simulation) Step() bool {
	if s.queue.empty() {
		return false
	}
	qe := s.queue.pop()
	s.now = qe.time
	s.logger.Debug("event dispatched", "sim_id", s.ID, "time", qe.time, "seq", qe.seq)
	qe.ev.dispatch()
	return true
}

// AdvanceBy repeatedly steps while the next queued event's time is at most
// now+duration, then unconditionally sets now to now+duration. The final
// assignment is unconditional so that now reaches the target even if the
// future event list empties early; duration must be non-negative.
func (s *Simulation) AdvanceBy(duration SimTime) error {
	if duration < 0 {
		return ErrInvalidDelay
	}
	target := s.now + duration
	for !s.queue.empty() && s.queue.peekTime() <= target {
		s.Step()
	}
	s.now = target
	return nil
}

// AdvanceTo steps while ev is still Pending and the future event list is
// non-empty. It returns whether ev ended up Triggered: false means either
// it was aborted, or the future event list drained while ev was still
// Pending.
func (s *Simulation) AdvanceTo(ev Awaitable) bool {
	for ev.Pending() && !s.queue.empty() {
		s.Step()
	}
	return ev.Triggered()
}

// Run steps until the future event list is empty.
func (s *Simulation) Run() {
	s.logger.Info("simulation run starting", "sim_id", s.ID, "now", s.now)
	for s.Step() {
	}
	s.logger.Info("simulation run finished", "sim_id", s.ID, "now", s.now)
}

// PeekNext returns the time of the earliest queued event without removing
// it, and whether the future event list is non-empty.
func (s *Simulation) PeekNext() (SimTime, bool) {
	if s.queue.empty() {
		return 0, false
	}
	return s.queue.peekTime(), true
}

// Close shuts down the simulation, releasing any Process goroutine still
// parked in Wait. A closed Simulation must not be stepped or scheduled
// against again.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.shutdown)
}
