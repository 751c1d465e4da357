package wilsoncowan

import (
	"math"
	"strconv"
)

// Config holds the process-wide parameters of a run. It is shared read-only by
// the grid and every cell.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// SpontaneousRate is the probability that an excitable cell fires without
	// enough neighbour input.
	SpontaneousRate float64 `yaml:"spontaneous_rate"`
	// ConnectivityRadius bounds how far input is gathered from. A radius of the
	// form k+0.5 disables diagonal coupling.
	ConnectivityRadius float64 `yaml:"connectivity_radius"`
	Threshold          int     `yaml:"threshold"`
	RefractoryPeriod   int     `yaml:"refractory_period"`

	Steps int   `yaml:"steps"`
	Seed  int64 `yaml:"seed"`

	// Workers caps the goroutines summing neighbour input. Zero means
	// GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:               30,
		Cols:               30,
		SpontaneousRate:    0.02,
		ConnectivityRadius: 3,
		Threshold:          4,
		RefractoryPeriod:   6,
		Steps:              300,
		Seed:               1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SpontaneousRate = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ConnectivityRadius = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["refractory"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RefractoryPeriod = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	return c
}

// Validate reports the first invalid parameter as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return &ConfigError{Param: "rows", Value: c.Rows, Reason: "must be positive"}
	case c.Cols <= 0:
		return &ConfigError{Param: "cols", Value: c.Cols, Reason: "must be positive"}
	case math.IsNaN(c.SpontaneousRate) || c.SpontaneousRate < 0 || c.SpontaneousRate > 1:
		return &ConfigError{Param: "spontaneous_rate", Value: c.SpontaneousRate, Reason: "must lie in [0,1]"}
	case math.IsNaN(c.ConnectivityRadius) || math.IsInf(c.ConnectivityRadius, 0) || c.ConnectivityRadius <= 0:
		return &ConfigError{Param: "connectivity_radius", Value: c.ConnectivityRadius, Reason: "must be a positive finite number"}
	case c.Threshold < 0:
		return &ConfigError{Param: "threshold", Value: c.Threshold, Reason: "must not be negative"}
	case c.RefractoryPeriod < 0:
		return &ConfigError{Param: "refractory_period", Value: c.RefractoryPeriod, Reason: "must not be negative"}
	case c.Steps <= 0:
		return &ConfigError{Param: "steps", Value: c.Steps, Reason: "must be positive"}
	case c.Workers < 0:
		return &ConfigError{Param: "workers", Value: c.Workers, Reason: "must not be negative"}
	}
	return nil
}

// Shape returns the grid dimensions.
func (c Config) Shape() Shape { return Shape{Rows: c.Rows, Cols: c.Cols} }

// Rule returns the transition rule shared by every cell.
func (c Config) Rule() Rule {
	return Rule{
		SpontaneousRate:  c.SpontaneousRate,
		Threshold:        c.Threshold,
		RefractoryPeriod: c.RefractoryPeriod,
	}
}
