package resolvekit

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/resolvekit/pkg/i18n"
	"github.com/dmitrymomot/resolvekit/pkg/validation"
)

// Process renders every raw error of a failed resolution into a final string
// and substitutes the sorted list back into the resolution.
//
// Successful resolutions and resolutions without errors pass through
// unchanged. For failed ones, every Message is rendered directly and every
// Tree is flattened into leaves first; the rendered strings from all entries
// are concatenated, sorted ascending by byte order (stable, so identical
// strings keep their relative input order), and stored back as Message values
// in Errors. Value, State and Context are untouched.
func Process(res Resolution) Resolution {
	if !res.Failed() {
		return res
	}

	locale := res.Locale()
	tr := res.Translator()

	var messages []string
	for _, raw := range res.Errors {
		switch e := raw.(type) {
		case Message:
			messages = append(messages, FormatMessage(string(e), locale, tr))
		case Tree:
			for _, leaf := range validation.Flatten(e.Node) {
				messages = append(messages, FormatLeaf(leaf, locale, tr))
			}
		default:
			// A RawError implementation outside this package is a bug in
			// the producer.
			panic(fmt.Sprintf("resolvekit: unsupported raw error type %T", raw))
		}
	}

	slices.SortStableFunc(messages, strings.Compare)

	errs := make([]RawError, len(messages))
	for i, msg := range messages {
		errs[i] = Message(msg)
	}
	res.Errors = errs
	return res
}

// ResolverFunc resolves a typed request into a Resolution.
type ResolverFunc[R any] func(ctx context.Context, req R) Resolution

// Middleware wraps a ResolverFunc to add cross-cutting functionality.
// Middlewares are applied in order, with the first middleware in the list
// being the outermost wrapper.
type Middleware[R any] func(ResolverFunc[R]) ResolverFunc[R]

// Chain applies middlewares to a resolver so the first middleware is the
// outermost.
//
//	resolve := resolvekit.Chain(createPost,
//		resolvekit.ErrorMessages[CreatePostRequest](),
//	)
func Chain[R any](resolver ResolverFunc[R], middlewares ...Middleware[R]) ResolverFunc[R] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		resolver = middlewares[i](resolver)
	}
	return resolver
}

// ErrorMessages returns middleware that post-processes failed resolutions
// with Process. When the resolution context carries no locale, the locale
// from the request context (i18n.SetLocale) is used.
func ErrorMessages[R any]() Middleware[R] {
	return func(next ResolverFunc[R]) ResolverFunc[R] {
		return func(ctx context.Context, req R) Resolution {
			res := next(ctx, req)
			if !res.Failed() {
				return res
			}
			if _, ok := res.Context[ContextLocale]; !ok {
				res = res.WithLocale(i18n.GetLocale(ctx))
			}
			return Process(res)
		}
	}
}
