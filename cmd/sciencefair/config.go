package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ukaji3/sciencefair-go/pkg/sciencefair"
)

// config holds flag defaults that can be set from the environment.
type config struct {
	Input   string `env:"SCIENCEFAIR_FILE"`
	Sheet   string `env:"SCIENCEFAIR_SHEET"`
	Format  string `env:"SCIENCEFAIR_FORMAT" envDefault:"text"`
	Verbose bool   `env:"SCIENCEFAIR_VERBOSE"`
}

func loadConfig() (config, error) {
	cfg := config{Input: sciencefair.DefaultPath}
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
