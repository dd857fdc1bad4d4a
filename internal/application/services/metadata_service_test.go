package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/seo"
)

const testBaseURL = "https://www.alfabeauty.co.id"

func newMetadataService(t *testing.T) *MetadataService {
	t.Helper()
	return NewMetadataService(loadStore(t), testBaseURL+"/")
}

func TestNewMetadataServiceStripsTrailingSlash(t *testing.T) {
	assert.Equal(t, testBaseURL, newMetadataService(t).BaseURL())
}

func TestBuildMetadataAlternatesCoverEverySupportedLocale(t *testing.T) {
	svc := newMetadataService(t)

	for _, locale := range i18n.SupportedLocales {
		for _, route := range StaticRoutes {
			meta := svc.BuildMetadata(locale, route.Template, nil)

			assert.Len(t, meta.AlternateLinks, len(i18n.SupportedLocales),
				"route %s locale %s", route.Template, locale)
			for _, alt := range i18n.SupportedLocales {
				assert.Contains(t, meta.AlternateLinks, string(alt))
			}

			// Canonical always equals the current locale's alternate.
			assert.Equal(t, meta.AlternateLinks[string(locale)], meta.CanonicalURL)
		}
	}
}

func TestBuildMetadataURLShape(t *testing.T) {
	svc := newMetadataService(t)

	t.Run("root route yields bare locale URL", func(t *testing.T) {
		meta := svc.BuildMetadata(i18n.LocaleID, "/", nil)
		assert.Equal(t, testBaseURL+"/id", meta.CanonicalURL)
		assert.Equal(t, testBaseURL+"/en", meta.AlternateLinks["en"])
	})

	t.Run("static route is locale prefixed", func(t *testing.T) {
		meta := svc.BuildMetadata(i18n.LocaleEN, "/products", nil)
		assert.Equal(t, testBaseURL+"/en/products", meta.CanonicalURL)
		assert.Equal(t, testBaseURL+"/id/products", meta.AlternateLinks["id"])
	})

	t.Run("parameterized route expands before localization", func(t *testing.T) {
		meta := svc.BuildMetadata(i18n.LocaleEN, "/products/:slug",
			map[string]string{"slug": "some-product"})
		assert.Equal(t, testBaseURL+"/en/products/some-product", meta.CanonicalURL)
	})
}

func TestBuildMetadataCopy(t *testing.T) {
	svc := newMetadataService(t)
	store := loadStore(t)

	t.Run("static route copy comes from the dictionary", func(t *testing.T) {
		for _, locale := range i18n.SupportedLocales {
			meta := svc.BuildMetadata(locale, "/contact", nil)
			dict := store.Translations(locale)
			assert.Equal(t, dict["contact.title"], meta.Title)
			assert.Equal(t, dict["contact.lede"], meta.Description)
		}
	})

	t.Run("product page copy comes from the product", func(t *testing.T) {
		product := store.Products()[0]
		meta := svc.BuildMetadata(i18n.LocaleEN, "/products/:slug",
			map[string]string{"slug": product.Slug})
		assert.Equal(t, product.Name, meta.Title)
		assert.Equal(t, product.Summary, meta.Description)
	})

	t.Run("unknown product falls back to not-found copy", func(t *testing.T) {
		meta := svc.BuildMetadata(i18n.LocaleEN, "/products/:slug",
			map[string]string{"slug": "no-such-product"})
		dict := store.Translations(i18n.LocaleEN)
		assert.Equal(t, dict["products.notFound"], meta.Title)
	})
}

func TestBuildBreadcrumbs(t *testing.T) {
	svc := newMetadataService(t)

	list := svc.BuildBreadcrumbs([]seo.Crumb{
		{Name: "Home", URL: "/en"},
		{Name: "Products", URL: "/en/products"},
		{Name: "Argan Shine Serum", URL: testBaseURL + "/en/products/argan-shine-serum"},
	})

	assert.Equal(t, "https://schema.org", list.Context)
	assert.Equal(t, "BreadcrumbList", list.Type)
	require.Len(t, list.Elements, 3)

	for i, item := range list.Elements {
		assert.Equal(t, "ListItem", item.Type)
		assert.Equal(t, i+1, item.Position)
		assert.Contains(t, item.Item, testBaseURL)
	}

	// Already absolute URLs pass through unchanged.
	assert.Equal(t, testBaseURL+"/en/products/argan-shine-serum", list.Elements[2].Item)
	assert.Equal(t, testBaseURL+"/en/products", list.Elements[1].Item)
}

func TestBuildOrganization(t *testing.T) {
	org := newMetadataService(t).BuildOrganization()

	assert.Equal(t, "Organization", org.Type)
	assert.Equal(t, testBaseURL, org.URL)
	assert.Equal(t, testBaseURL+"/images/logo.png", org.Logo)
}

func TestExpandRoute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
	}{
		{"no params", "/products", nil, "/products"},
		{"single param", "/products/:slug", map[string]string{"slug": "x-cream"}, "/products/x-cream"},
		{"missing param keeps placeholder", "/products/:slug", map[string]string{"other": "v"}, "/products/:slug"},
		{"root unchanged", "/", map[string]string{"slug": "v"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandRoute(tt.template, tt.params))
		})
	}
}
