// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessTriggersOwnEventOnCompletion(t *testing.T) {
	sim := NewSimulation()
	p := sim.Process(func(proc Process) {
		proc.Wait(proc.Timeout(3))
	})

	require.True(t, p.Pending())
	sim.Run()
	require.True(t, p.Triggered())
	require.Equal(t, SimTime(3), sim.Now())
}

func TestProcessWaitingOnAnotherProcess(t *testing.T) {
	sim := NewSimulation()
	var childFinishedBeforeParent bool

	var child *Process
	parent := sim.Process(func(proc Process) {
		child = sim.Process(func(inner Process) {
			inner.Wait(inner.Timeout(5))
		})
		proc.Wait(child)
		childFinishedBeforeParent = child.Processed()
	})

	sim.Run()
	require.True(t, parent.Triggered())
	require.True(t, childFinishedBeforeParent)
	require.Equal(t, SimTime(5), sim.Now())
}

func TestProcessDoesNotYieldOnAlreadyTriggeredEvent(t *testing.T) {
	sim := NewSimulation()
	e := sim.Event()
	require.NoError(t, e.Trigger())

	p := sim.Process(func(proc Process) {
		proc.Wait(e) // must fall through immediately, no suspension
	})

	sim.Run()
	require.Equal(t, SimTime(0), sim.Now())
	require.True(t, p.Triggered())
}

func TestProcessAbortsWhenAwaitedEventAborts(t *testing.T) {
	sim := NewSimulation()
	e := sim.Event()

	p := sim.Process(func(proc Process) {
		proc.Wait(e)
	})

	e.Abort()
	sim.Run()
	require.True(t, p.Aborted())
}

func TestProcessReflectBindsArguments(t *testing.T) {
	sim := NewSimulation()
	results := make(chan string, 1)

	greet := func(proc Process, name string, delay SimTime) {
		proc.Wait(proc.Timeout(delay))
		results <- name
	}

	p := sim.ProcessReflect(greet, "car-1", SimTime(7))
	sim.Run()

	require.True(t, p.Processed())
	require.Equal(t, SimTime(7), sim.Now())
	require.Equal(t, "car-1", <-results)
}

func TestTwoSequentialProcessesMirrorTwoCarRace(t *testing.T) {
	sim := NewSimulation()
	var log []string

	car := func(proc Process, name string, laps int) {
		for i := 0; i < laps; i++ {
			proc.Wait(proc.Timeout(5))
			log = append(log, name)
		}
	}

	race := sim.Process(func(proc Process) {
		c1 := sim.ProcessReflect(car, "C1", 2)
		proc.Wait(c1)
		c2 := sim.ProcessReflect(car, "C2", 2)
		proc.Wait(c2)
	})

	sim.Run()
	require.True(t, race.Processed())
	require.Equal(t, []string{"C1", "C1", "C2", "C2"}, log)
	require.Equal(t, SimTime(20), sim.Now())
}
