package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

func newSitemapService(t *testing.T) *SitemapService {
	t.Helper()
	store := loadStore(t)
	return NewSitemapService(NewMetadataService(store, testBaseURL), NewCatalogService(store))
}

func TestSitemapCoversEveryRouteAndLocale(t *testing.T) {
	svc := newSitemapService(t)
	xml := svc.SitemapXML()

	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`)

	for _, locale := range i18n.SupportedLocales {
		// Root page appears as the bare locale URL.
		assert.Contains(t, xml, fmt.Sprintf("<loc>%s/%s</loc>", testBaseURL, locale))

		for _, route := range StaticRoutes[1:] {
			assert.Contains(t, xml,
				fmt.Sprintf("<loc>%s/%s%s</loc>", testBaseURL, locale, route.Template))
		}
	}
}

func TestSitemapIncludesEveryProductWithAlternates(t *testing.T) {
	svc := newSitemapService(t)
	xml := svc.SitemapXML()

	for _, product := range svc.catalog.ListProducts(nil) {
		for _, locale := range i18n.SupportedLocales {
			url := fmt.Sprintf("%s/%s/products/%s", testBaseURL, locale, product.Slug)
			assert.Contains(t, xml, fmt.Sprintf("<loc>%s</loc>", url))
			assert.Contains(t, xml,
				fmt.Sprintf(`<xhtml:link rel="alternate" hreflang="%s" href="%s"/>`, locale, url))
		}
	}
}

func TestSitemapEntryCount(t *testing.T) {
	svc := newSitemapService(t)
	xml := svc.SitemapXML()

	pages := len(StaticRoutes) + len(svc.catalog.ListProducts(nil))
	want := pages * len(i18n.SupportedLocales)
	assert.Equal(t, want, strings.Count(xml, "<url>"))

	// Every <url> carries the full alternate set.
	assert.Equal(t, want*len(i18n.SupportedLocales), strings.Count(xml, "<xhtml:link"))
}

func TestRobotsTxt(t *testing.T) {
	txt := newSitemapService(t).RobotsTxt()

	assert.Contains(t, txt, "User-agent: *")
	assert.Contains(t, txt, "Disallow: /api/")
	assert.Contains(t, txt, "Sitemap: "+testBaseURL+"/sitemap.xml")
}
