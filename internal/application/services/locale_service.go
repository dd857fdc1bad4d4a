// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
)

// LocaleService resolves raw locale tokens and serves translation
// dictionaries from the content store.
type LocaleService struct {
	store *content.Store
}

// NewLocaleService creates a new locale application service
func NewLocaleService(store *content.Store) *LocaleService {
	return &LocaleService{store: store}
}

// Normalize maps any raw input onto the supported locale set. Total: it
// never fails and never returns an unsupported value.
func (s *LocaleService) Normalize(input string) i18n.Locale {
	return i18n.NormalizeLocale(input)
}

// IsSupported reports whether the exact token is a supported locale code.
func (s *LocaleService) IsSupported(token string) bool {
	return i18n.IsSupported(token)
}

// TranslationsFor returns the full dictionary for a locale. The dictionary
// set is validated at startup, so a supported locale always resolves to a
// complete dictionary.
func (s *LocaleService) TranslationsFor(locale i18n.Locale) i18n.Dictionary {
	return s.store.Translations(locale)
}

// Translate returns the copy for one key in the given locale.
func (s *LocaleService) Translate(locale i18n.Locale, key string) string {
	return s.store.Translations(locale)[key]
}

// Supported returns the closed set of locales the site serves.
func (s *LocaleService) Supported() []i18n.Locale {
	return i18n.SupportedLocales
}
