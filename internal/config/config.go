package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/coldtco/internal/pricing"
)

// Config holds coldtco configuration loaded from .coldtco.yaml.
// Zero values mean "not set"; command-line defaults apply instead.
type Config struct {
	InitialGB       int                         `yaml:"initial_gb" validate:"gte=0"`
	MonthlyIngestGB int                         `yaml:"monthly_ingest_gb" validate:"gte=0"`
	Months          int                         `yaml:"months" validate:"gte=0"`
	Providers       []string                    `yaml:"providers"`
	Currency        string                      `yaml:"currency"`
	Format          string                      `yaml:"format" validate:"omitempty,oneof=text json"`
	Breakdown       bool                        `yaml:"breakdown"`
	CustomProviders map[string]pricing.Provider `yaml:"custom_providers" validate:"dive,keys,required,endkeys"`
}

var validate = validator.New()

// Validate checks field ranges and every custom provider definition.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Catalog returns the built-in provider catalog extended with CustomProviders.
func (c Config) Catalog() (*pricing.Catalog, error) {
	base := pricing.DefaultCatalog()
	if len(c.CustomProviders) == 0 {
		return base, nil
	}
	return base.With(c.CustomProviders)
}

// Load searches for .coldtco.yaml or .coldtco.yml in the given directory
// and returns the parsed config. Returns an empty Config if no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".coldtco.yaml"),
		filepath.Join(dir, ".coldtco.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
