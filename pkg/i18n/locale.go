package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLocale is the process-wide default locale used when a resolution or
// request carries none. Set it once at startup if the deployment default is
// not English.
var DefaultLocale = "en"

// MatchLocale negotiates the best supported locale for an Accept-Language
// header using golang.org/x/text language matching. Exact matches win over
// base-language matches (en-US falls back to en). When the header is empty,
// malformed, or nothing matches, fallback is returned.
func MatchLocale(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	locales := make([]string, 0, len(supported))
	for _, locale := range supported {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return fallback
	}
	return locales[idx]
}
