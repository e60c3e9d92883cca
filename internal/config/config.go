package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// HOWITZER_SIM_TIMESTEP or HOWITZER_SHOT_ANGLE.
const EnvPrefix = "HOWITZER"

var ErrInvalidConfig = errors.New("invalid config")

// SimConfig holds the flight integration settings
type SimConfig struct {
	TimeStep      float64 `json:"timeStep" mapstructure:"timeStep"`
	MaxFlightTime float64 `json:"maxFlightTime" mapstructure:"maxFlightTime"`
}

// EnvConfig holds the surroundings of the gun
type EnvConfig struct {
	Wind             float64 `json:"wind" mapstructure:"wind"`
	TerrainElevation float64 `json:"terrainElevation" mapstructure:"terrainElevation"`
}

// ShotConfig holds the default round
type ShotConfig struct {
	Angle       float64 `json:"angle" mapstructure:"angle"`
	MuzzleSpeed float64 `json:"muzzleSpeed" mapstructure:"muzzleSpeed"`
}

// OutputConfig controls the printed report
type OutputConfig struct {
	Format      string `json:"format" mapstructure:"format"`
	SampleEvery int    `json:"sampleEvery" mapstructure:"sampleEvery"`
}

type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	Sim      SimConfig    `json:"sim" mapstructure:"sim"`
	Env      EnvConfig    `json:"env" mapstructure:"env"`
	Shot     ShotConfig   `json:"shot" mapstructure:"shot"`
	Output   OutputConfig `json:"output" mapstructure:"output"`
}

// Load reads configuration from defaults and HOWITZER_* environment variables.
func Load() (Config, error) {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("sim.timeStep", 0.01)
	viper.SetDefault("sim.maxFlightTime", 600.0)

	viper.SetDefault("env.wind", 0.0)
	viper.SetDefault("env.terrainElevation", 0.0)

	viper.SetDefault("shot.angle", 45.0)
	viper.SetDefault("shot.muzzleSpeed", 827.0)

	viper.SetDefault("output.format", "yaml")
	viper.SetDefault("output.sampleEvery", 0)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Sim.TimeStep <= 0:
		return fmt.Errorf("%w: sim.timeStep must be positive, got %g", ErrInvalidConfig, c.Sim.TimeStep)
	case c.Sim.MaxFlightTime <= 0:
		return fmt.Errorf("%w: sim.maxFlightTime must be positive, got %g", ErrInvalidConfig, c.Sim.MaxFlightTime)
	case c.Output.Format != "yaml" && c.Output.Format != "json":
		return fmt.Errorf("%w: output.format must be yaml or json, got %q", ErrInvalidConfig, c.Output.Format)
	case c.Output.SampleEvery < 0:
		return fmt.Errorf("%w: output.sampleEvery must not be negative", ErrInvalidConfig)
	}
	return nil
}
