// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package race is a two-car sequential race. It exercises a Process used
// purely as an Awaitable for its own completion: the race process waits
// for one car to finish before starting the next.
package race

import (
	"log/slog"

	"github.com/ondrahome/simkernel"
)

// Car runs for the given number of laps, each lapInterval time units long,
// logging its progress once per lap.
func Car(proc simkernel.Process, logger *slog.Logger, name string, laps int, lapInterval float64) {
	for lap := 1; lap <= laps; lap++ {
		proc.Wait(proc.Timeout(lapInterval))
		logger.Info("car running", "car", name, "lap", lap, "now", proc.Now())
	}
}

// TwoCars starts car C1, waits for it to finish, then starts car C2 and
// waits for it too.
func TwoCars(proc simkernel.Process, logger *slog.Logger, laps int, lapInterval float64) {
	logger.Info("starting car C1", "now", proc.Now())
	c1 := proc.ProcessReflect(Car, logger, "C1", laps, lapInterval)
	proc.Wait(c1)
	logger.Info("finished car C1", "now", proc.Now())

	logger.Info("starting car C2", "now", proc.Now())
	c2 := proc.ProcessReflect(Car, logger, "C2", laps, lapInterval)
	proc.Wait(c2)
	logger.Info("finished car C2", "now", proc.Now())
}
