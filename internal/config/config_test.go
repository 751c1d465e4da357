package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wilson-ca/internal/sims/wilsoncowan"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "run.yaml", `
rows: 50
cols: 40
spontaneous_rate: 0.001
connectivity_radius: 2
threshold: 2
`)
	t.Setenv("WC_STEPS", "120")
	t.Setenv("WC_SEED", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Rows)
	assert.Equal(t, 40, cfg.Cols)
	assert.Equal(t, 0.001, cfg.SpontaneousRate)
	assert.Equal(t, 2.0, cfg.ConnectivityRadius)
	assert.Equal(t, 2, cfg.Threshold)
	assert.Equal(t, 6, cfg.RefractoryPeriod, "unset keys keep defaults")
	assert.Equal(t, 120, cfg.Steps)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "WC_THRESHOLD=3\n")
	t.Cleanup(func() { os.Unsetenv("WC_THRESHOLD") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Threshold)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "bad.yaml", "rows: 10\nradius: 3\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "radius")
}

func TestLoadValidates(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "bad.yaml", "connectivity_radius: -1\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, wilsoncowan.ErrInvalidConfig)
}

func TestApplyEnvMalformed(t *testing.T) {
	cfg := wilsoncowan.DefaultConfig()
	env := map[string]string{"WC_ROWS": "ten"}
	err := ApplyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.ErrorContains(t, err, "WC_ROWS")
}
