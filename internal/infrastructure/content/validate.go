package content

import (
	"fmt"
	"strings"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

// validate enforces the content-authoring invariants. These are build-time
// defects: a failure here aborts startup so a defect can never surface at
// serve time.
func (s *Store) validate() error {
	var problems []string

	problems = append(problems, s.validateProducts()...)
	problems = append(problems, s.validateTranslations()...)

	if len(problems) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func (s *Store) validateProducts() []string {
	var problems []string

	seen := make(map[string]bool, len(s.products))
	for _, p := range s.products {
		if p.Slug == "" {
			problems = append(problems, fmt.Sprintf("product %q has an empty slug", p.Name))
			continue
		}
		if seen[p.Slug] {
			problems = append(problems, fmt.Sprintf("duplicate product slug %q", p.Slug))
		}
		seen[p.Slug] = true

		if len(p.Audience) == 0 {
			problems = append(problems, fmt.Sprintf("product %q has no audience", p.Slug))
		}
		for _, a := range p.Audience {
			if !knownAudience(a) {
				problems = append(problems, fmt.Sprintf("product %q has unknown audience %q", p.Slug, a))
			}
		}
		for _, c := range p.Categories {
			if !knownCategory(c) {
				problems = append(problems, fmt.Sprintf("product %q has unknown category %q", p.Slug, c))
			}
		}
	}

	return problems
}

// validateTranslations checks completeness parity: every key present in the
// default locale's dictionary must have a non-empty value in every other
// supported locale.
func (s *Store) validateTranslations() []string {
	var problems []string

	for _, locale := range i18n.SupportedLocales {
		if _, exists := s.translations[locale]; !exists {
			problems = append(problems, fmt.Sprintf("missing translation dictionary for locale %q", locale))
		}
	}

	defaultDict, exists := s.translations[i18n.DefaultLocale]
	if !exists {
		return problems
	}

	for key, value := range defaultDict {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, fmt.Sprintf("empty value for key %q in default locale %q", key, i18n.DefaultLocale))
		}
	}

	for _, locale := range i18n.SupportedLocales {
		if locale == i18n.DefaultLocale {
			continue
		}
		dict, exists := s.translations[locale]
		if !exists {
			continue
		}
		for key := range defaultDict {
			if strings.TrimSpace(dict[key]) == "" {
				problems = append(problems, fmt.Sprintf("locale %q is missing translation for key %q", locale, key))
			}
		}
	}

	return problems
}

func knownAudience(a content.Audience) bool {
	for _, known := range content.KnownAudiences {
		if a == known {
			return true
		}
	}
	return false
}

func knownCategory(c content.Category) bool {
	for _, known := range content.KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}
