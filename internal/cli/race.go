// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrahome/simkernel"
	"github.com/ondrahome/simkernel/internal/config"
	"github.com/ondrahome/simkernel/internal/examples/race"
)

var raceCmd = &cobra.Command{
	Use:   "race",
	Short: "Run the two-car sequential race example",
	Long: `Starts one car, waits for it to finish its laps, then starts a
second.`,
	RunE: runRace,
}

func init() {
	raceCmd.Flags().Float64("lap-interval", 5.0, "time units per lap")
	raceCmd.Flags().Int("laps", 20, "laps per car")

	viper.BindPFlag("lap_interval", raceCmd.Flags().Lookup("lap-interval"))
	viper.BindPFlag("laps", raceCmd.Flags().Lookup("laps"))
}

func runRace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadRace(viper.GetViper())
	if err != nil {
		return err
	}

	log := logger()
	sim := simkernel.NewSimulation(simkernel.WithLogger(log))
	sim.ProcessReflect(race.TwoCars, log, cfg.Laps, cfg.LapInterval)
	sim.Run()
	return nil
}
