package cmd

import (
	"github.com/df07/go-scene-raytracer/pkg/config"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// setupLogging loads the environment configuration and applies its log level.
// -v and -vv take precedence.
func setupLogging(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.SetLevel(logLevel(cfg, ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
	return cfg, nil
}

// logLevel picks the verbosity from the configuration and command line flags
func logLevel(cfg *config.Config, verbose, veryVerbose bool) log.Level {
	switch {
	case veryVerbose:
		return log.Debug
	case verbose:
		return log.Info
	}
	if cfg != nil {
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			return level
		}
	}
	return log.Notice
}
