package content

import (
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

// Store holds all static site content in memory. It is built once by Load
// and read-only from then on, so lookups need no synchronization.
type Store struct {
	products     []*content.Product
	slugToIndex  map[string]int
	sections     []*content.Section
	translations map[i18n.Locale]i18n.Dictionary
}

func newStore(products []*content.Product, sections []*content.Section, translations map[string]i18n.Dictionary) *Store {
	s := &Store{
		products:     products,
		slugToIndex:  make(map[string]int, len(products)),
		sections:     sections,
		translations: make(map[i18n.Locale]i18n.Dictionary, len(translations)),
	}

	for i, p := range products {
		if _, exists := s.slugToIndex[p.Slug]; !exists {
			s.slugToIndex[p.Slug] = i
		}
	}

	for code, dict := range translations {
		s.translations[i18n.Locale(code)] = dict
	}

	return s
}

// Products returns every catalog entry in source declaration order.
func (s *Store) Products() []*content.Product {
	return s.products
}

// ProductBySlug returns the product with the exact slug, or nil when no such
// product exists. A miss is a normal outcome, not an error.
func (s *Store) ProductBySlug(slug string) *content.Product {
	if i, found := s.slugToIndex[slug]; found {
		return s.products[i]
	}
	return nil
}

// Sections returns the home-page sections in display order.
func (s *Store) Sections() []*content.Section {
	return s.sections
}

// Translations returns the dictionary for the given locale. The locale set
// is validated at load time, so a supported locale always resolves.
func (s *Store) Translations(locale i18n.Locale) i18n.Dictionary {
	return s.translations[locale]
}
