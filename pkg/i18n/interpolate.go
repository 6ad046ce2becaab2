package i18n

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate substitutes named placeholders in the form "%{name}" with the
// corresponding binding value rendered as its canonical string form.
//
// A placeholder with no matching binding is kept as literal text; the
// function never fails.
//
//	Interpolate("must be greater than %{number}", map[string]any{"number": 10})
//	// "must be greater than 10"
func Interpolate(template string, bindings map[string]any) string {
	if len(bindings) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		// Extract parameter name
		name := match[2 : len(match)-1]
		val, ok := bindings[name]
		if !ok {
			// Keep original placeholder if binding not found
			return match
		}
		return bindingString(val)
	})
}

// bindingString renders a binding value: integers as decimal, strings
// verbatim, everything else through its default string form.
func bindingString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
