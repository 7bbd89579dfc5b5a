// Package cliconfig loads the CLI's environment-variable defaults, layered
// under by explicit flags/arguments the user supplies at invocation time.
package cliconfig

import "github.com/caarlos0/env/v10"

// Config holds the environment-variable-backed defaults for the payback
// CLI. Every field can be overridden by an explicit flag or positional
// argument; Load only supplies what the user didn't.
type Config struct {
	Method   string `env:"PAYBACK_METHOD" envDefault:"approx-star-expand"`
	Output   string `env:"PAYBACK_OUTPUT" envDefault:"transactions"`
	LogLevel string `env:"PAYBACK_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment, falling back to its envDefault
// tags when a variable is unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
