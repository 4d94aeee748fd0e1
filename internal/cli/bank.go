// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrahome/simkernel"
	"github.com/ondrahome/simkernel/internal/config"
	"github.com/ondrahome/simkernel/internal/examples/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Run the single-server bank-queue example",
	Long: `Simulates a bank with a configurable number of counters, a Poisson
arrival process, and customer abandonment.`,
	RunE: runBank,
}

func init() {
	bankCmd.Flags().Int("customers", 10, "number of customers to simulate")
	bankCmd.Flags().Float64("mean-arrival-interval", 10.0, "mean time between arrivals")
	bankCmd.Flags().Float64("mean-time-in-bank", 12.0, "mean service time per customer")
	bankCmd.Flags().Float64("max-wait-time", 16.0, "patience before a customer abandons the queue")
	bankCmd.Flags().Int("counters", 1, "number of service counters")
	bankCmd.Flags().Uint64("seed", 0, "random seed")

	viper.BindPFlag("customers", bankCmd.Flags().Lookup("customers"))
	viper.BindPFlag("mean_arrival_interval", bankCmd.Flags().Lookup("mean-arrival-interval"))
	viper.BindPFlag("mean_time_in_bank", bankCmd.Flags().Lookup("mean-time-in-bank"))
	viper.BindPFlag("max_wait_time", bankCmd.Flags().Lookup("max-wait-time"))
	viper.BindPFlag("counters", bankCmd.Flags().Lookup("counters"))
	viper.BindPFlag("seed", bankCmd.Flags().Lookup("seed"))
}

func runBank(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadBank(viper.GetViper())
	if err != nil {
		return err
	}

	log := logger()
	sim := simkernel.NewSimulation(simkernel.WithLogger(log))

	counters := bank.NewResource(sim, log, cfg.Counters)
	sim.ProcessReflect(bank.CustomerSource, log, cfg.Customers, cfg.MeanArrivalInterval,
		cfg.MeanTimeInBank, cfg.MaxWaitTime, counters, cfg.Seed)

	sim.Run()
	return nil
}
