// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package bank is a single-server (or N-server) queue with customer
// abandonment. It exercises the kernel's composite events: a customer
// races the counter becoming free against a patience timeout via AnyOf,
// then aborts its request if the timeout won.
package bank

import (
	"log/slog"

	"github.com/ondrahome/simkernel"
	"github.com/ondrahome/simkernel/internal/rngutil"
)

// Resource is a capacity-N FIFO service counter: requests queue up, and
// whenever capacity frees (either at construction or on Release), the
// resource walks the queue from the front granting service to any
// still-pending request.
type Resource struct {
	sim      *simkernel.Simulation
	logger   *slog.Logger
	capacity int
	queue    []*simkernel.Event
}

// NewResource returns a Resource with the given service capacity.
func NewResource(sim *simkernel.Simulation, logger *slog.Logger, capacity int) *Resource {
	return &Resource{sim: sim, logger: logger, capacity: capacity}
}

// Request enqueues a new request for the resource and returns its event.
// The event triggers once the request reaches the front of the queue and
// capacity is available; it is the caller's responsibility to Abort it if
// they give up waiting (see Customer below).
func (r *Resource) Request() *simkernel.Event {
	req := r.sim.Event()
	r.queue = append(r.queue, req)
	r.triggerRequests()
	return req
}

// Release returns one unit of capacity to the resource and re-evaluates
// the queue.
func (r *Resource) Release() {
	r.capacity++
	r.triggerRequests()
}

// QueueLength returns the number of queued requests that are still Pending.
// Abandoned (aborted) requests not yet dropped by triggerRequests are not
// counted.
func (r *Resource) QueueLength() int {
	n := 0
	for _, req := range r.queue {
		if req.Pending() {
			n++
		}
	}
	return n
}

func (r *Resource) triggerRequests() {
	for r.capacity > 0 && len(r.queue) > 0 {
		req := r.queue[0]
		r.queue = r.queue[1:]

		if !req.Pending() {
			// abandoned while waiting; drop it without consuming capacity
			continue
		}

		r.capacity--
		req.Trigger()
	}
}

// Customer is one arrival at the bank: request a counter, abandon after
// maxWait if it never frees up, otherwise be served for an
// exponentially-distributed duration.
func Customer(proc simkernel.Process, logger *slog.Logger, serviceTime *rngutil.Exponential, maxWait float64, counters *Resource, id int) {
	logger.Info("customer arrives", "customer_id", id, "now", proc.Now())

	request := counters.Request()
	proc.Wait(proc.AnyOf(request, proc.Timeout(maxWait)))

	if !request.Triggered() {
		request.Abort()
		logger.Info("customer leaves unhappy", "customer_id", id, "now", proc.Now())
		return
	}

	logger.Info("customer reaches counter", "customer_id", id, "now", proc.Now())
	proc.Wait(proc.Timeout(serviceTime.Next()))

	logger.Info("customer leaves", "customer_id", id, "now", proc.Now())
	counters.Release()
}

// CustomerSource starts n customers at exponentially-distributed
// intervals.
func CustomerSource(proc simkernel.Process, logger *slog.Logger, n int, arrival, meanTimeInBank, maxWait float64, counters *Resource, seed uint64) {
	interarrival := rngutil.NewExponential(arrival, seed)
	serviceTime := rngutil.NewExponential(meanTimeInBank, seed+1)

	for id := 1; id <= n; id++ {
		proc.ProcessReflect(Customer, logger, serviceTime, maxWait, counters, id)
		proc.Wait(proc.Timeout(interarrival.Next()))
	}
}
