package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

func TestSectionsSelectLocaleCopy(t *testing.T) {
	store := loadStore(t)
	svc := NewContentService(store)

	for _, locale := range i18n.SupportedLocales {
		sections := svc.Sections(locale)
		require.Len(t, sections, len(store.Sections()))

		for i, section := range sections {
			source := store.Sections()[i]
			assert.Equal(t, source.ID, section.ID)
			assert.Equal(t, source.Kind, section.Kind)
			assert.Equal(t, source.Copy[string(locale)], section.Copy)
		}
	}
}

func TestSectionsKeepDisplayOrder(t *testing.T) {
	svc := NewContentService(loadStore(t))

	en := svc.Sections(i18n.LocaleEN)
	id := svc.Sections(i18n.LocaleID)
	require.Equal(t, len(en), len(id))

	for i := range en {
		assert.Equal(t, en[i].ID, id[i].ID)
	}
}
