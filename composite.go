// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

// AnyOf returns a fresh event that triggers as soon as any of events is (or
// becomes) triggered. An empty events list triggers immediately, since
// there is nothing left to wait for.
//
// If an input is already triggered at construction time, the composite
// triggers immediately and no handlers are attached to the remaining
// inputs. Otherwise a handler is attached to every input; the first one to
// fire triggers the composite, and later firings are harmless no-ops
// because the composite is no longer Pending.
func (s *Simulation) AnyOf(events ...Awaitable) *Event {
	c := s.Event()

	if len(events) == 0 {
		c.Trigger()
		return c
	}

	for _, e := range events {
		if e.Triggered() {
			c.Trigger()
			return c
		}
	}

	for _, e := range events {
		e.AddHandler(func(*Event) {
			c.Trigger()
		})
	}

	return c
}

// AllOf returns a fresh event that triggers once every input in events has
// triggered. An empty events list triggers immediately. If an input
// aborts before triggering, the composite never triggers via that input,
// so AllOf deadlocks permanently unless the event is abandoned by its
// caller.
func (s *Simulation) AllOf(events ...Awaitable) *Event {
	c := s.Event()

	remaining := 0
	for _, e := range events {
		if !e.Triggered() {
			remaining++
		}
	}

	if remaining == 0 {
		c.Trigger()
		return c
	}

	for _, e := range events {
		if e.Triggered() {
			continue
		}
		e.AddHandler(func(*Event) {
			remaining--
			if remaining == 0 {
				c.Trigger()
			}
		})
	}

	return c
}
