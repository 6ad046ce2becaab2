package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Catalog is the built-in map-backed Translator. It holds the message tables
// of every supported locale, partitioned by translation domain.
//
// A Catalog is loaded once from a CatalogSource and never mutated afterwards,
// so it may be shared across concurrently executing lookups without
// synchronization.
type Catalog struct {
	entries        Table
	defaultLocale  string
	missingLogMode bool
	logger         *slog.Logger
}

// NewCatalog creates a Catalog from the given source and options.
func NewCatalog(ctx context.Context, source CatalogSource, options ...Option) (*Catalog, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source is nil")
	}

	c := &Catalog{
		defaultLocale:  DefaultLocale,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	// Apply options
	for _, option := range options {
		option(c)
	}

	// Load catalog entries from the source
	entries, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Validate entries
	if err := c.validateEntries(entries); err != nil {
		return nil, err
	}

	c.entries = entries
	c.logger.InfoContext(ctx, "Message catalog loaded", "locales", c.supportedLocales())
	return c, nil
}

// validateEntries checks that the loaded table has a sane structure.
func (c *Catalog) validateEntries(entries Table) error {
	if len(entries) == 0 {
		c.logger.Warn("No catalog entries provided")
		return nil
	}

	for locale, domains := range entries {
		if locale == "" {
			return fmt.Errorf("empty locale code found")
		}
		if domains == nil {
			return fmt.Errorf("nil domain table for locale: %s", locale)
		}
		for domain := range domains {
			if domain == "" {
				return fmt.Errorf("empty domain name found for locale: %s", locale)
			}
		}
	}
	return nil
}

// supportedLocales returns the locale codes present in the catalog.
func (c *Catalog) supportedLocales() []string {
	locales := make([]string, 0, len(c.entries))
	for locale := range c.entries {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// SupportedLocales returns a sorted list of locale codes that have catalog
// entries available.
func (c *Catalog) SupportedLocales() []string {
	return c.supportedLocales()
}

// Translate implements Translator. It looks up the template for the given
// domain, key and locale. A missing locale, domain or key all report a miss;
// none of them is an error.
func (c *Catalog) Translate(domain, key, locale string) (string, bool) {
	domains, ok := c.entries[locale]
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("Locale not in catalog", "locale", locale, "domain", domain, "key", key)
		}
		return "", false
	}

	messages, ok := domains[domain]
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("Domain not in catalog", "locale", locale, "domain", domain, "key", key)
		}
		return "", false
	}

	template, ok := messages[key]
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("Translation not found", "locale", locale, "domain", domain, "key", key)
		}
		return "", false
	}

	return template, true
}

// HasTranslation checks if a catalog entry exists for the given domain, key
// and locale.
func (c *Catalog) HasTranslation(domain, key, locale string) bool {
	_, ok := c.Translate(domain, key, locale)
	return ok
}

// DefaultLocale returns the locale the catalog was configured with, used as
// the negotiation fallback by MatchLocale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// MatchLocale negotiates the best supported locale for an Accept-Language
// header, falling back to the catalog's default locale.
func (c *Catalog) MatchLocale(acceptLanguage string) string {
	return MatchLocale(acceptLanguage, c.supportedLocales(), c.defaultLocale)
}
