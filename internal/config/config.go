// Package config loads simulation parameters from YAML files, .env files and
// WC_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wilson-ca/internal/sims/wilsoncowan"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WC_"

// Load is Read followed by validation.
func Load(path string) (wilsoncowan.Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Read builds a configuration from the defaults, the YAML file at path (if
// non-empty), a .env file in the working directory (if present) and finally
// WC_* environment variables. The result is not validated so callers can
// apply further overrides first.
func Read(path string) (wilsoncowan.Config, error) {
	cfg := wilsoncowan.DefaultConfig()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *wilsoncowan.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from environment variables looked up with lookup.
func ApplyEnv(cfg *wilsoncowan.Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &cfg.Rows},
		{"COLS", &cfg.Cols},
		{"THRESHOLD", &cfg.Threshold},
		{"REFRACTORY_PERIOD", &cfg.RefractoryPeriod},
		{"STEPS", &cfg.Steps},
		{"WORKERS", &cfg.Workers},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = parsed
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"SPONTANEOUS_RATE", &cfg.SpontaneousRate},
		{"CONNECTIVITY_RADIUS", &cfg.ConnectivityRadius},
	}
	for _, f := range floats {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = parsed
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = parsed
	}
	return nil
}
