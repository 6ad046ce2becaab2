package resolvekit

import (
	"maps"

	"github.com/dmitrymomot/resolvekit/pkg/i18n"
	"github.com/dmitrymomot/resolvekit/pkg/validation"
)

// State reports whether a resolver produced a usable value.
type State int

const (
	// StateResolved means the resolver succeeded; Errors is ignored.
	StateResolved State = iota

	// StateUnresolved means the resolver failed and Errors carries the raw
	// failure entries.
	StateUnresolved
)

// Context keys recognized on a Resolution.
const (
	// ContextLocale holds the locale (string) used to localize error output.
	ContextLocale = "locale"

	// ContextTranslator holds the i18n.Translator used for catalog lookups.
	ContextTranslator = "translator"
)

// RawError is one unprocessed error entry on a Resolution. It is a sealed
// sum: either a free-standing Message or a validation Tree.
type RawError interface {
	isRawError()
}

// Message is a free-standing error string. After processing, every entry in
// Resolution.Errors is a Message holding the rendered text.
type Message string

// Tree wraps the validation result of one record and its associations.
type Tree struct {
	Node *validation.Node
}

func (Message) isRawError() {}
func (Tree) isRawError()    {}

// Resolution is the outcome of one resolver invocation as it travels through
// the pipeline. Process rewrites only the Errors field; Value, State and
// Context pass through untouched.
type Resolution struct {
	// Value is the successful payload. Never inspected by this package.
	Value any

	// Errors carries the raw error entries of a failed resolution, and the
	// rendered Message values after Process has run.
	Errors []RawError

	// State signals whether the resolver failed.
	State State

	// Context may carry ContextLocale and ContextTranslator entries; both
	// have defaults, so a nil map is fine.
	Context map[string]any
}

// Resolved returns a successful resolution wrapping the given value.
func Resolved(value any) Resolution {
	return Resolution{Value: value, State: StateResolved}
}

// Unresolved returns a failed resolution carrying the given raw errors.
func Unresolved(errs ...RawError) Resolution {
	return Resolution{Errors: errs, State: StateUnresolved}
}

// Failed reports whether the resolution carries errors to process.
func (r Resolution) Failed() bool {
	return r.State == StateUnresolved && len(r.Errors) > 0
}

// Locale returns the locale from the resolution context, falling back to the
// process-wide default.
func (r Resolution) Locale() string {
	if locale, ok := r.Context[ContextLocale].(string); ok && locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}

// Translator returns the translator from the resolution context, falling
// back to the identity translator.
func (r Resolution) Translator() i18n.Translator {
	if tr, ok := r.Context[ContextTranslator].(i18n.Translator); ok && tr != nil {
		return tr
	}
	return i18n.Noop{}
}

// WithLocale returns a copy of the resolution whose context carries the given
// locale. The original context map is not mutated.
func (r Resolution) WithLocale(locale string) Resolution {
	return r.withContextValue(ContextLocale, locale)
}

// WithTranslator returns a copy of the resolution whose context carries the
// given translator. The original context map is not mutated.
func (r Resolution) WithTranslator(tr i18n.Translator) Resolution {
	return r.withContextValue(ContextTranslator, tr)
}

func (r Resolution) withContextValue(key string, value any) Resolution {
	ctx := make(map[string]any, len(r.Context)+1)
	maps.Copy(ctx, r.Context)
	ctx[key] = value
	r.Context = ctx
	return r
}

// ErrorStrings returns the Message entries of Errors as plain strings.
// After Process has run this is the final, sorted error list.
func (r Resolution) ErrorStrings() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Errors))
	for _, raw := range r.Errors {
		if msg, ok := raw.(Message); ok {
			out = append(out, string(msg))
		}
	}
	return out
}
