// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import (
	"reflect"
	"runtime"
)

// Process is a resumable computation running inside a discrete-event
// simulation. A process can wait for events and other processes, create
// new events, and start new processes.
//
// A Process is itself an Awaitable: its underlying event triggers exactly
// once, the moment the process function returns. That lets one process
// await another's completion the same way it awaits any other event.
//
// Internally a Process is a goroutine cooperatively scheduled by the
// Simulation: the goroutine only runs between one Wait call and the next
// (or between the process's start and its first Wait), handing control
// back and forth over an unbuffered channel so that, from the simulation's
// point of view, only one goroutine is ever doing work at a time. There is
// no real parallelism and no preemption.
//
// To start a process, use (*Simulation).Process or
// (*Simulation).ProcessReflect:
//
//	func myProcess(proc simkernel.Process) {
//	    proc.Wait(proc.Timeout(5))
//	}
//	sim.Process(myProcess)
//
// Process encapsulates *Simulation, so all its methods can be used.
type Process struct {
	// Simulation is used to generate timeouts and other events, and start new
	// processes.
	*Simulation

	// ev is triggered when the process finishes or aborted when the process is
	// aborted.
	ev *Event

	// sync is used to yield to the process / simulation and wait for the
	// process / simulation.
	sync chan bool
}

// Process starts a new process running f and returns it. f takes its first
// step at the current simulation time, but only after the call to Process
// returns and the current call chain unwinds: it is started by scheduling
// a zero-delay event whose handler performs the first handshake with f's
// goroutine.
func (s *Simulation) Process(f func(Process)) *Process {
	return s.startProcess(f)
}

// ProcessReflect starts a new process running ctor, a function whose first
// parameter is a Process and whose remaining parameters are bound to args
// via reflection. This lets the caller's process body take its own
// constructor-style arguments instead of closing over them.
//
//	func customer(proc simkernel.Process, counters *Resource, id int) { ... }
//	sim.ProcessReflect(customer, counters, 1)
func (s *Simulation) ProcessReflect(ctor interface{}, args ...interface{}) *Process {
	fv := reflect.ValueOf(ctor)
	return s.startProcess(func(proc Process) {
		in := make([]reflect.Value, len(args)+1)
		in[0] = reflect.ValueOf(proc)
		for i, a := range args {
			in[i+1] = reflect.ValueOf(a)
		}
		fv.Call(in)
	})
}

func (s *Simulation) startProcess(f func(Process)) *Process {
	proc := &Process{
		Simulation: s,
		ev:         s.Event(),
		sync:       make(chan bool),
	}

	go func() {
		select {
		case <-proc.sync: // wait for simulation to start the process
		case <-s.shutdown:
			runtime.Goexit()
		}

		// yield to simulation, both when f returns and when Wait aborts the
		// process through runtime.Goexit
		defer func() {
			select {
			case proc.sync <- true:
			case <-s.shutdown:
			}
		}()

		f(*proc)

		proc.ev.Trigger()
	}()

	start := s.Event()
	start.AddHandler(func(*Event) {
		proc.sync <- true // yield to process
		select {
		case <-proc.sync: // wait for process to yield back or finish
		case <-s.shutdown:
		}
	})
	start.Trigger()

	return proc
}

// Wait yields from the process to the simulation and waits until the given
// awaitable is triggered.
//
// If the awaitable is already triggered, including one whose Trigger was
// just called with a zero delay and hasn't dispatched yet, as with an
// AnyOf/AllOf that resolved during construction, the process does not
// suspend at all. If the awaitable is aborted, the process is aborted too.
func (proc Process) Wait(ev Awaitable) {
	if ev.Aborted() {
		// event aborted, abort process
		proc.ev.Abort()
		runtime.Goexit()
	}

	// handler called when the event is processed
	registered := ev.AddHandler(func(*Event) {
		// yield to process
		proc.sync <- true

		// wait for process
		<-proc.sync
	})

	if !registered {
		// already triggered (or processed): do not suspend
		return
	}

	// handler called when the event is aborted
	ev.AddAbortHandler(func(*Event) {
		// abort process
		proc.sync <- false

		// wait for process
		<-proc.sync
	})

	// yield to simulation
	proc.sync <- true

	select {
	case processed := <-proc.sync: // wait for simulation
		if !processed {
			// event aborted, abort process
			proc.ev.Abort()
			runtime.Goexit()
		}

	case <-proc.shutdown: // wait for simulation shutdown
		runtime.Goexit()
	}
}

// Pending returns whether the underlying event is pending.
func (proc Process) Pending() bool {
	return proc.ev.Pending()
}

// Triggered returns whether the underlying event is triggered.
func (proc Process) Triggered() bool {
	return proc.ev.Triggered()
}

// Processed returns whether the underlying event is processed.
func (proc Process) Processed() bool {
	return proc.ev.Processed()
}

// Aborted returns whether the underlying event is aborted.
func (proc Process) Aborted() bool {
	return proc.ev.Aborted()
}

// AddHandler adds the given handler to the underlying event.
func (proc Process) AddHandler(handler Handler) bool {
	return proc.ev.AddHandler(handler)
}

// AddAbortHandler adds the given abort handler to the underlying event.
func (proc Process) AddAbortHandler(handler Handler) bool {
	return proc.ev.AddAbortHandler(handler)
}
