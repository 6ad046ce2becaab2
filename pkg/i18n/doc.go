// Package i18n provides the localization capability consumed by the
// resolution error formatter: message catalogs partitioned by translation
// domain, template interpolation with named placeholders, and locale
// negotiation helpers.
//
// The package is built around the single-method Translator capability. A
// lookup either hits, returning the localized template, or misses, which is a
// normal outcome: callers fall back to the untranslated key. Nothing in this
// package returns an error at translation time.
//
// # Domains
//
// Catalogs are partitioned into named domains so field names (nouns) and
// message bodies (predicates) are localized independently. The formatter uses
// DomainErrors for message templates and DomainFields for field names.
//
// # Catalogs
//
// Catalog is the built-in Translator: an in-memory locale -> domain -> key ->
// template table loaded once at process startup from a CatalogSource and
// read-only afterwards, so it is safe to share across goroutines without
// synchronization. Ready-made sources cover in-memory maps, single files,
// directories and any fs.FS (including embed.FS), with YAML and JSON parsers
// included.
//
//	source := i18n.NewDirSource(i18n.NewYAMLParser(), "./translations")
//	catalog, err := i18n.NewCatalog(context.Background(), source,
//		i18n.WithDefaultLocale("en"),
//	)
//	if err != nil {
//		log.Fatalf("failed to load catalog: %v", err)
//	}
//
//	tmpl, ok := catalog.Translate(i18n.DomainErrors, "can't be blank", "pt")
//
// # Interpolation
//
// Templates use named placeholders in the form %{name}:
//
//	i18n.Interpolate("should be at least %{count} character(s)", map[string]any{"count": 2})
//	// "should be at least 2 character(s)"
//
// A placeholder with no matching binding is left as literal text.
package i18n
