package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "4", "-seed", "9", "-replay", "-set", "radius=2", "-set", "rows=40"})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scale)
	assert.True(t, cfg.Replay)
	assert.Equal(t, map[string]string{"radius": "2", "rows": "40"}, cfg.Params)
	assert.Equal(t, map[string]string{"radius": "2", "rows": "40", "seed": "9"}, cfg.SimParams())
	assert.Equal(t, "radius=2,rows=40", fs.Lookup("set").Value.String())
}

func TestConfigBindRejectsBadOverride(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	assert.Error(t, fs.Parse([]string{"-set", "radius"}))
}
