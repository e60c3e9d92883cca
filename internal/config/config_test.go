package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0.01, cfg.Sim.TimeStep)
	assert.Equal(t, 600.0, cfg.Sim.MaxFlightTime)
	assert.Equal(t, 0.0, cfg.Env.Wind)
	assert.Equal(t, 0.0, cfg.Env.TerrainElevation)
	assert.Equal(t, 45.0, cfg.Shot.Angle)
	assert.Equal(t, 827.0, cfg.Shot.MuzzleSpeed)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 0, cfg.Output.SampleEvery)
}

func TestLoad_Environment(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Setenv("HOWITZER_LOGLEVEL", "debug")
	t.Setenv("HOWITZER_SIM_TIMESTEP", "0.5")
	t.Setenv("HOWITZER_ENV_WIND", "-12.5")
	t.Setenv("HOWITZER_SHOT_ANGLE", "30")
	t.Setenv("HOWITZER_OUTPUT_FORMAT", "json")
	t.Setenv("HOWITZER_OUTPUT_SAMPLEEVERY", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.5, cfg.Sim.TimeStep)
	assert.Equal(t, -12.5, cfg.Env.Wind)
	assert.Equal(t, 30.0, cfg.Shot.Angle)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 25, cfg.Output.SampleEvery)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero time step", "HOWITZER_SIM_TIMESTEP", "0"},
		{"negative flight time", "HOWITZER_SIM_MAXFLIGHTTIME", "-1"},
		{"unknown format", "HOWITZER_OUTPUT_FORMAT", "xml"},
		{"negative sampling", "HOWITZER_OUTPUT_SAMPLEEVERY", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Undecodable(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HOWITZER_SIM_TIMESTEP", "fast")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding config")
}
