package resolvekit

import (
	"github.com/dmitrymomot/resolvekit/pkg/i18n"
	"github.com/dmitrymomot/resolvekit/pkg/validation"
)

// FormatMessage renders a free-standing error message. The message itself is
// the catalog key in the errors domain; a miss falls back to the message
// unchanged. Free-standing messages carry no bindings, so no interpolation is
// applied.
func FormatMessage(msg, locale string, tr i18n.Translator) string {
	if tr == nil {
		tr = i18n.Noop{}
	}
	if translated, ok := tr.Translate(i18n.DomainErrors, msg, locale); ok {
		return translated
	}
	return msg
}

// FormatLeaf renders one flattened field failure as a final string.
//
// The message template is localized through the errors domain and
// interpolated with the leaf's bindings; the field name is localized through
// the schema_fields domain. Both fall back to their untranslated form on a
// catalog miss. The result is "field message", or "prefix: field message"
// when the leaf sits inside an association.
func FormatLeaf(leaf validation.Leaf, locale string, tr i18n.Translator) string {
	if tr == nil {
		tr = i18n.Noop{}
	}

	template := leaf.Template
	if translated, ok := tr.Translate(i18n.DomainErrors, leaf.Template, locale); ok {
		template = translated
	}
	message := i18n.Interpolate(template, leaf.Bindings)

	field := leaf.Field
	if translated, ok := tr.Translate(i18n.DomainFields, leaf.Field, locale); ok {
		field = translated
	}

	if leaf.Prefix == "" {
		return field + " " + message
	}
	return leaf.Prefix + ": " + field + " " + message
}
