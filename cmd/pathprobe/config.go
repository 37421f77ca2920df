package main

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the defaults of pathprobe. Command line flags override them.
type Config struct {
	Precision float64 `envconfig:"PRECISION" default:"0.5"`
	LineSteps int     `envconfig:"LINE_STEPS" default:"10"`
	Size      int     `envconfig:"SIZE" default:"512"`
	Debug     bool    `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads the configuration from PATHPROBE_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pathprobe", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
