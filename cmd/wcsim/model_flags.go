package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"wilson-ca/internal/config"
	"wilson-ca/internal/logging"
	"wilson-ca/internal/sims/wilsoncowan"
)

// addModelFlags registers the simulation parameters on cmd. Defaults are
// shown for reference only; a flag overrides file and environment values
// only when it is set explicitly.
func addModelFlags(cmd *cobra.Command) {
	def := wilsoncowan.DefaultConfig()
	f := cmd.Flags()
	f.Int("rows", def.Rows, "Grid rows")
	f.Int("cols", def.Cols, "Grid columns")
	f.Float64("rate", def.SpontaneousRate, "Spontaneous firing probability per step")
	f.Float64("radius", def.ConnectivityRadius, "Connectivity radius")
	f.Int("threshold", def.Threshold, "Active neighbours needed to fire")
	f.Int("refractory", def.RefractoryPeriod, "Refractory steps after firing")
	f.Int("steps", def.Steps, "Steps to record, including the initial frame")
	f.Int64("seed", def.Seed, "Random seed")
	f.Int("workers", def.Workers, "Goroutines for neighbour sums (0 = GOMAXPROCS)")
}

// loadModelConfig layers explicitly set flags over config.Read and
// validates the result.
func loadModelConfig(cmd *cobra.Command) (wilsoncowan.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Read(path)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	ints := map[string]*int{
		"rows":       &cfg.Rows,
		"cols":       &cfg.Cols,
		"threshold":  &cfg.Threshold,
		"refractory": &cfg.RefractoryPeriod,
		"steps":      &cfg.Steps,
		"workers":    &cfg.Workers,
	}
	for name, dst := range ints {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	if f.Changed("rate") {
		cfg.SpontaneousRate, _ = f.GetFloat64("rate")
	}
	if f.Changed("radius") {
		cfg.ConnectivityRadius, _ = f.GetFloat64("radius")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewLogger(level, cmd.ErrOrStderr())
}
