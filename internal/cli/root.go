// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package cli is the command-line driver for the kernel's example models.
// It only ever creates a Simulation, wires a model into it, and calls Run;
// everything it touches is public simkernel surface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "simkernel",
	Short:   "simkernel: a discrete-event simulation kernel and example models",
	Version: "0.1.0-dev",
}

// Execute runs the root command. It is called once from cmd/simkernel/main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(raceCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("SIMKERNEL")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // absence of a config file is not an error
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
