// Package config loads service settings from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every environment variable, e.g. TRAVELTHREADS_ADDR.
const Prefix = "travelthreads"

type Config struct {
	Addr           string `envconfig:"ADDR" default:":8080" validate:"required"`
	DataDir        string `envconfig:"DATA_DIR" default:"data/badger"`
	InMemory       bool   `envconfig:"IN_MEMORY" default:"false"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Handle         string `envconfig:"HANDLE" default:"you" validate:"required,max=50"`
	SeedFile       string `envconfig:"SEED_FILE"`
	CategoriesFile string `envconfig:"CATEGORIES_FILE"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !c.InMemory && c.DataDir == "" {
		return fmt.Errorf("invalid config: DATA_DIR is required unless IN_MEMORY is set")
	}
	return nil
}

// JournalPath is the Badger directory, or "" for an in-memory store.
func (c *Config) JournalPath() string {
	if c.InMemory {
		return ""
	}
	return c.DataDir
}
