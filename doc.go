// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package simkernel is a single-threaded, in-memory discrete-event
// simulation kernel: a future event list advances a virtual clock in
// timestamp order, dispatching one-shot Events to their Handlers, which
// typically resume a Process, a cooperatively-scheduled goroutine
// suspended on an Event.
//
// The kernel itself only knows about events, processes, and the clock.
// Building a model (a queue, a resource, a customer) is the caller's job;
// see internal/examples for two worked models built on top of it.
package simkernel
