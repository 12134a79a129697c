package config

import (
	"fmt"

	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load
const Prefix = "RAYTRACER"

// Config holds render defaults read from the environment. Command line
// flags override these values.
type Config struct {
	Workers  int     `envconfig:"WORKERS" default:"0"`
	Mode     string  `envconfig:"MODE" default:"parallel"`
	TMax     float64 `envconfig:"TMAX" default:"10000"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"notice"`
	Output   string  `envconfig:"OUTPUT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that envconfig cannot express
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%s_WORKERS must not be negative; got %d", Prefix, c.Workers)
	}
	if c.TMax <= 0 {
		return fmt.Errorf("%s_TMAX must be positive; got %g", Prefix, c.TMax)
	}
	if _, err := renderer.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%s_MODE: %w", Prefix, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", Prefix, err)
	}
	return nil
}

// RenderOptions converts the configuration into renderer options
func (c *Config) RenderOptions() (renderer.Options, error) {
	mode, err := renderer.ParseMode(c.Mode)
	if err != nil {
		return renderer.Options{}, err
	}
	options := renderer.DefaultOptions()
	options.Mode = mode
	options.NumWorkers = c.Workers
	options.TMax = c.TMax
	return options, nil
}
