// Package resolvekit turns the hierarchical result of validating a record and
// its nested associations into a flat, deterministically ordered, optionally
// localized list of human-readable error strings.
//
// The package does not validate anything itself: an upstream validator
// produces a validation tree (pkg/validation), and resolvekit only formats
// that result inside a resolver pipeline.
//
// Key pieces:
//
//   - Resolution – the outcome of one resolver invocation: a value, a state,
//     raw errors, and a context that may carry a locale and a translator
//   - Process – renders every raw error into a string, sorts the strings, and
//     substitutes them back into the resolution
//   - ErrorMessages – the same transformation packaged as pipeline middleware
//
// Basic usage:
//
//	resolve := resolvekit.Chain(createPost,
//		resolvekit.ErrorMessages[CreatePostRequest](),
//	)
//
//	res := resolve(ctx, req)
//	if res.Failed() {
//		for _, msg := range res.ErrorStrings() {
//			fmt.Println(msg) // "title can't be blank", ...
//		}
//	}
//
// Localization is pluggable through the i18n.Translator capability; without a
// catalog every message falls back to its untranslated form.
package resolvekit
