package i18n

import (
	"context"
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes catalog loading through environment variables.
type Config struct {
	// Dir is the directory holding the per-locale catalog files.
	Dir string `env:"I18N_DIR" envDefault:"./translations"`

	// DefaultLocale is the negotiation fallback locale.
	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`

	// Format selects the catalog file format: "yaml" or "json".
	Format string `env:"I18N_FORMAT" envDefault:"yaml"`

	// LogMissing enables logging of missed catalog lookups.
	LogMissing bool `env:"I18N_LOG_MISSING" envDefault:"false"`
}

// LoadConfig populates a Config from environment variables, reading a .env
// file first when one exists.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewCatalogFromConfig builds a directory-backed catalog from cfg.
// Extra options are applied after the ones derived from the config, so they
// take precedence.
func NewCatalogFromConfig(ctx context.Context, cfg Config, options ...Option) (*Catalog, error) {
	parser := ParserForFile("catalog." + cfg.Format)
	if parser == nil {
		parser = NewYAMLParser()
	}

	opts := append([]Option{
		WithDefaultLocale(cfg.DefaultLocale),
		WithMissingLogging(cfg.LogMissing),
	}, options...)

	return NewCatalog(ctx, NewDirSource(parser, cfg.Dir), opts...)
}
