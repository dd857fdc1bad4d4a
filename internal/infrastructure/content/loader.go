// Package content loads and serves the static site content: the product
// catalog, home-page sections, and translation dictionaries. Content is read
// once at startup, validated, and immutable afterward.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

//go:embed data/products.json data/sections.json data/translations.json
var defaultContent embed.FS

// Load builds the content store from the embedded defaults, or from
// contentDir when it is non-empty. The returned store has already passed
// authoring validation; any defect fails the load.
func Load(contentDir string) (*Store, error) {
	products, err := loadJSON[[]*content.Product](contentDir, "products.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	sections, err := loadJSON[[]*content.Section](contentDir, "sections.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	translations, err := loadJSON[map[string]i18n.Dictionary](contentDir, "translations.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	// Section order is authoring metadata; serve order is fixed here once.
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	store := newStore(products, sections, translations)

	if err := store.validate(); err != nil {
		return nil, err
	}

	return store, nil
}

func loadJSON[T any](contentDir, name string) (T, error) {
	var out T

	data, err := readContentFile(contentDir, name)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", name, err)
	}

	return out, nil
}

func readContentFile(contentDir, name string) ([]byte, error) {
	if contentDir != "" {
		data, err := os.ReadFile(filepath.Join(contentDir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}

	data, err := defaultContent.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, nil
}
