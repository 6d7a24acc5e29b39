package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides configuration with the variables named by each
// field's env tag. Unset variables leave the file or default value alone.
func loadFromEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
