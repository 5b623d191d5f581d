package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housesim/internal/model"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1, cfg.Houses)
	assert.Equal(t, 2, cfg.Occupants)
	assert.Equal(t, 30, cfg.Days)
	assert.InDelta(t, 0.5, cfg.Insulation, 0.001)
	assert.InDelta(t, DefaultPricePerKWh, cfg.PricePerKWh, 0.001)
	assert.Equal(t, model.ScenarioNormal, cfg.Scenario)
	assert.Equal(t, model.SmartNone, cfg.SmartPolicy)
	assert.Equal(t, 2, cfg.Rooms[model.RoomBedroom])
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
days: 7
scenario: heatwave
smart_policy: all
profile: lunch
insulation: 0.8
seed: 99
rooms:
  kitchen: 1
  bedroom: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Days)
	assert.Equal(t, model.ScenarioHeatwave, cfg.Scenario)
	assert.Equal(t, model.SmartAll, cfg.SmartPolicy)
	assert.Equal(t, "lunch", cfg.Profile)
	assert.InDelta(t, 0.8, cfg.Insulation, 0.001)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 3, cfg.Rooms[model.RoomBedroom])
	// Untouched fields keep their defaults.
	assert.Equal(t, 2, cfg.Occupants)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "days: [not a number")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero houses", func(c *Config) { c.Houses = 0 }, false},
		{"zero occupants", func(c *Config) { c.Occupants = 0 }, false},
		{"insulation too low", func(c *Config) { c.Insulation = 0.05 }, false},
		{"insulation too high", func(c *Config) { c.Insulation = 1.5 }, false},
		{"zero days", func(c *Config) { c.Days = 0 }, false},
		{"negative price", func(c *Config) { c.PricePerKWh = -1 }, false},
		{"negative room count", func(c *Config) { c.Rooms[model.RoomKitchen] = -1 }, false},
		{"unknown room type", func(c *Config) { c.Rooms["garage"] = 1 }, false},
		{"unknown scenario", func(c *Config) { c.Scenario = "monsoon" }, false},
		{"unknown smart policy", func(c *Config) { c.SmartPolicy = "some" }, false},
		{"unknown profile", func(c *Config) { c.Profile = "nocturnal" }, false},
		{"no rooms at all", func(c *Config) { c.Rooms = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
