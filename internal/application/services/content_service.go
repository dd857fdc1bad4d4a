package services

import (
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	store "github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
)

// LocalizedSection is a home-page section with the copy for one locale
// already selected.
type LocalizedSection struct {
	ID   string            `json:"id"`
	Kind string            `json:"kind"`
	Copy map[string]string `json:"copy"`
}

// ContentService serves localized home-page sections.
type ContentService struct {
	store *store.Store
}

// NewContentService creates a new content application service
func NewContentService(s *store.Store) *ContentService {
	return &ContentService{store: s}
}

// Sections returns the home-page sections in display order with the given
// locale's copy selected. A section missing copy for the locale falls back
// to the default locale; translation parity makes this a non-event for
// validated content.
func (s *ContentService) Sections(locale i18n.Locale) []*LocalizedSection {
	sections := s.store.Sections()

	localized := make([]*LocalizedSection, 0, len(sections))
	for _, section := range sections {
		sectionCopy := section.Copy[string(locale)]
		if sectionCopy == nil {
			sectionCopy = section.Copy[string(i18n.DefaultLocale)]
		}
		localized = append(localized, &LocalizedSection{
			ID:   section.ID,
			Kind: section.Kind,
			Copy: sectionCopy,
		})
	}

	return localized
}
