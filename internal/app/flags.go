package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// Rate is the number of simulation steps per second.
	Rate int
	Seed int64
	// Replay runs the model to completion first and then loops the history.
	Replay bool
	// Params are key=value overrides handed to the sim factory.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wilsoncowan", Scale: 12, TPS: 60, Rate: 10, Seed: 1337, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Replay, "replay", c.Replay, "run to completion, then loop the recorded history")
	fs.Var((*paramFlag)(&c.Params), "set", "sim parameter override in key=value form (repeatable)")
}

// SimParams returns Params with the seed folded in.
func (c *Config) SimParams() map[string]string {
	out := make(map[string]string, len(c.Params)+1)
	for k, v := range c.Params {
		out[k] = v
	}
	out["seed"] = fmt.Sprint(c.Seed)
	return out
}

type paramFlag map[string]string

func (p *paramFlag) String() string {
	if p == nil || *p == nil {
		return ""
	}
	keys := make([]string, 0, len(*p))
	for k := range *p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + (*p)[k]
	}
	return strings.Join(parts, ",")
}

func (p *paramFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if *p == nil {
		*p = map[string]string{}
	}
	(*p)[key] = val
	return nil
}
