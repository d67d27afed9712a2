package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"affiliate-escrow/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Only used when
	// Engine.Storage is "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Kafka configures the domain event publisher.
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	// Engine configures storage selection, the program identity and
	// startup holdings.
	Engine configs.Engine `envPrefix:"ENGINE_"`
}

// Load reads configuration from environment variables into a Config and
// validates the values that cannot be checked by tags alone.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Engine.Storage {
	case configs.StorageMemory, configs.StoragePostgres:
	default:
		return cfg, fmt.Errorf("ENGINE_STORAGE: unknown storage %q", cfg.Engine.Storage)
	}
	if _, err := cfg.Engine.Program(); err != nil {
		return cfg, fmt.Errorf("ENGINE_PROGRAM_ID: %w", err)
	}
	if _, err := cfg.Engine.Grants(); err != nil {
		return cfg, fmt.Errorf("ENGINE_SEED: %w", err)
	}
	return cfg, nil
}
