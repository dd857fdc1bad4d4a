// Package i18n defines the supported locales and translation dictionary types.
package i18n

import "strings"

// Locale is a supported language identifier. The set is closed: every value
// flowing through the system is one of the constants below.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleID Locale = "id"
)

// DefaultLocale is the locale every unrecognized input normalizes to.
const DefaultLocale = LocaleEN

// SupportedLocales lists every locale the site serves, default first.
var SupportedLocales = []Locale{LocaleEN, LocaleID}

// NormalizeLocale maps any raw locale token (path segment, Accept-Language
// fragment, cookie value) onto the supported set. It is total: nil-equivalent,
// empty, and unrelated inputs all yield DefaultLocale. It never fails.
func NormalizeLocale(input string) Locale {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return DefaultLocale
	}
	for _, locale := range SupportedLocales {
		if strings.HasPrefix(token, string(locale)) {
			return locale
		}
	}
	return DefaultLocale
}

// IsSupported reports whether the exact token is a supported locale code.
// Unlike NormalizeLocale this does not default: routing uses it to 404 on
// invalid locale path prefixes.
func IsSupported(input string) bool {
	for _, locale := range SupportedLocales {
		if input == string(locale) {
			return true
		}
	}
	return false
}

// Dictionary is a flat mapping from dotted semantic keys
// (e.g. "contact.title") to locale-specific copy. Dictionaries are built at
// startup and never mutated afterward.
type Dictionary map[string]string
