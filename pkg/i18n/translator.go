package i18n

// Translation domains used by the resolution error formatter. Field names and
// message bodies live in separate catalog partitions so they can be localized
// independently.
const (
	// DomainErrors holds message-body templates keyed by their untranslated
	// form, e.g. "can't be blank".
	DomainErrors = "errors"

	// DomainFields holds field-name translations keyed by the schema field
	// name, e.g. "username".
	DomainFields = "schema_fields"
)

// Translator resolves a message key to a localized template. It is a
// capability, not a hierarchy: any catalog backend can be substituted by
// implementing this one method.
//
// A miss (second return false) is a normal, expected outcome and never an
// error; callers fall back to the key itself. Implementations must be
// side-effect free from the caller's perspective and safe for concurrent use.
type Translator interface {
	Translate(domain, key, locale string) (string, bool)
}

// Noop is the identity translator: every lookup misses, so every key falls
// back to itself. It is the default when no catalog is configured.
type Noop struct{}

// Translate implements Translator. It always reports a miss.
func (Noop) Translate(domain, key, locale string) (string, bool) {
	return "", false
}
