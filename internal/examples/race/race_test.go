// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package race

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ondrahome/simkernel"
)

// recordingHandler is a minimal slog.Handler that captures the "car" and
// "lap" attributes of every record, so tests can assert on lap ordering
// without parsing formatted log text.
type recordingHandler struct {
	cars *[]string
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	var car string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "car" {
			car = a.Value.String()
		}
		return true
	})
	if car != "" {
		*h.cars = append(*h.cars, car)
	}
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordingHandler) WithGroup(string) slog.Handler      { return h }

// TestTwoCarsRunSequentially mirrors example-twocars.cpp: car C2 never
// starts its first lap until car C1 has completed every lap.
func TestTwoCarsRunSequentially(t *testing.T) {
	var cars []string
	logger := slog.New(recordingHandler{cars: &cars})

	sim := simkernel.NewSimulation()
	sim.ProcessReflect(TwoCars, logger, 3, 10.0)
	sim.Run()

	require.Equal(t, []string{"C1", "C1", "C1", "C2", "C2", "C2"}, cars)
	require.Equal(t, simkernel.SimTime(60), sim.Now())
}

// TestCarCompletesExactlyLapsLaps checks a single car in isolation finishes
// after laps*lapInterval time units and logs one record per lap.
func TestCarCompletesExactlyLapsLaps(t *testing.T) {
	var cars []string
	logger := slog.New(recordingHandler{cars: &cars})

	sim := simkernel.NewSimulation()
	sim.ProcessReflect(Car, logger, "solo", 4, 2.5)
	sim.Run()

	require.Len(t, cars, 4)
	require.Equal(t, simkernel.SimTime(10), sim.Now())
}
