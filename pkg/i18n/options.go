package i18n

import (
	"io"
	"log/slog"
)

// Option is a function that configures a Catalog instance.
type Option func(*Catalog)

// WithDefaultLocale sets the fallback locale used by MatchLocale when
// negotiation fails.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithLogger provides a customizable logger for the catalog.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging controls whether missed lookups are logged.
// Default is false to avoid excessive logging; misses are a normal outcome.
func WithMissingLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		c.missingLogMode = false
	}
}
