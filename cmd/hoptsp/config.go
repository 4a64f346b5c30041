package main

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/hoptsp/hopfield"
)

// WeightsSection mirrors the [weights] block of a run-config file.
type WeightsSection struct {
	A float64 `ini:"a"`
	B float64 `ini:"b"`
	C float64 `ini:"c"`
	D float64 `ini:"d"`
}

// RunSection mirrors the [run] block of a run-config file.
type RunSection struct {
	MaxIterations   int     `ini:"max_iterations"`
	EnergyThreshold float64 `ini:"energy_threshold"`
	Seed            int64   `ini:"seed"`
}

// Config is the full run configuration: energy weights plus loop budgets.
type Config struct {
	Weights WeightsSection
	Run     RunSection
}

// defaultConfig returns the reference parameterization: A=B=C=100, D=1 and
// the solver's default budgets.
func defaultConfig() Config {
	return Config{
		Weights: WeightsSection{A: 100, B: 100, C: 100, D: 1},
		Run: RunSection{
			MaxIterations:   hopfield.DefaultMaxIterations,
			EnergyThreshold: hopfield.DefaultEnergyThreshold,
			Seed:            0,
		},
	}
}

// loadConfig reads an ini run-config and maps it over the defaults, so a
// partial file only overrides the keys it names.
func loadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err = file.Section("weights").MapTo(&cfg.Weights); err != nil {
		return Config{}, fmt.Errorf("failed to map [weights] section: %w", err)
	}
	if err = file.Section("run").MapTo(&cfg.Run); err != nil {
		return Config{}, fmt.Errorf("failed to map [run] section: %w", err)
	}

	return cfg, nil
}

// solverWeights converts the config block into solver weights.
func (c Config) solverWeights() hopfield.Weights {
	return hopfield.Weights{A: c.Weights.A, B: c.Weights.B, C: c.Weights.C, D: c.Weights.D}
}

// solverOptions converts the config block into solver options.
func (c Config) solverOptions() hopfield.Options {
	opts := hopfield.DefaultOptions()
	opts.MaxIterations = c.Run.MaxIterations
	opts.EnergyThreshold = c.Run.EnergyThreshold
	opts.Seed = c.Run.Seed

	return opts
}
