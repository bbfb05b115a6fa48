package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by site services.
const EnvPrefix = "MERPARA_"

// ParseEnv loads configuration from prefixed environment variables.
//
// Struct tags omit the prefix: a field tagged `env:"WEB_HTTP_ADDR"` reads
// MERPARA_WEB_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
