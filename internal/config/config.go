// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package config loads the parameters of the example models from flags, a
// config file, and the environment, layering viper over cobra flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Bank holds the parameters of the single-server bank-queue example.
type Bank struct {
	Customers           int     `mapstructure:"customers"`
	MeanArrivalInterval float64 `mapstructure:"mean_arrival_interval"`
	MeanTimeInBank      float64 `mapstructure:"mean_time_in_bank"`
	MaxWaitTime         float64 `mapstructure:"max_wait_time"`
	Counters            int     `mapstructure:"counters"`
	Seed                uint64  `mapstructure:"seed"`
}

// Race holds the parameters of the two-car race example.
type Race struct {
	LapInterval float64 `mapstructure:"lap_interval"`
	Laps        int     `mapstructure:"laps"`
}

func bankDefaults(v *viper.Viper) {
	v.SetDefault("customers", 10)
	v.SetDefault("mean_arrival_interval", 10.0)
	v.SetDefault("mean_time_in_bank", 12.0)
	v.SetDefault("max_wait_time", 16.0)
	v.SetDefault("counters", 1)
	v.SetDefault("seed", uint64(0))
}

func raceDefaults(v *viper.Viper) {
	v.SetDefault("lap_interval", 5.0)
	v.SetDefault("laps", 20)
}

// LoadBank loads Bank parameters from v, which the CLI has already bound to
// flags, an optional config file, and SIMKERNEL_-prefixed env vars.
func LoadBank(v *viper.Viper) (*Bank, error) {
	bankDefaults(v)

	var cfg Bank
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal bank config: %w", err)
	}
	return &cfg, nil
}

// LoadRace loads Race parameters from v.
func LoadRace(v *viper.Viper) (*Race, error) {
	raceDefaults(v)

	var cfg Race
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal race config: %w", err)
	}
	return &cfg, nil
}
