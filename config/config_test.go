package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tessera.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
width: 400
radius: 10
seed: 42
seeds: 7
revisits: true
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Width = 400
	want.Radius = 10
	want.Seed = 42
	want.Seeds = 7
	want.Revisits = true
	want.LogLevel = "debug"
	assert.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	_, err = config.Load(writeFile(t, "width: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")

	_, err = config.Load(writeFile(t, "seeds: 0"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero width", func(c *config.Config) { c.Width = 0 }},
		{"negative height", func(c *config.Config) { c.Height = -1 }},
		{"zero radius", func(c *config.Config) { c.Radius = 0 }},
		{"radius too large", func(c *config.Config) { c.Radius = 600 }},
		{"negative relax", func(c *config.Config) { c.Relax = -1 }},
		{"no seeds", func(c *config.Config) { c.Seeds = 0 }},
		{"no workers", func(c *config.Config) { c.Workers = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
