package services

import (
	"fmt"
	"strings"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

// SitemapService renders the sitemap and robots descriptors from the same
// route and base-URL definitions the metadata builder uses, so the URLs
// crawlers see always agree with the canonical/hreflang set.
type SitemapService struct {
	metadata *MetadataService
	catalog  *CatalogService
}

// NewSitemapService creates a new sitemap application service
func NewSitemapService(metadata *MetadataService, catalog *CatalogService) *SitemapService {
	return &SitemapService{
		metadata: metadata,
		catalog:  catalog,
	}
}

// SitemapXML renders sitemap.xml: every static route and product page, once
// per supported locale, each with the full hreflang alternate set.
func (s *SitemapService) SitemapXML() string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")

	for _, route := range StaticRoutes {
		s.writeURLSet(&b, route.Template, nil)
	}
	for _, product := range s.catalog.ListProducts(nil) {
		s.writeURLSet(&b, "/products/:slug", map[string]string{"slug": product.Slug})
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

// writeURLSet emits one <url> entry per supported locale for a route, each
// carrying alternates for the whole locale set.
func (s *SitemapService) writeURLSet(b *strings.Builder, template string, params map[string]string) {
	for _, locale := range i18n.SupportedLocales {
		meta := s.metadata.BuildMetadata(locale, template, params)

		b.WriteString("  <url>\n")
		fmt.Fprintf(b, "    <loc>%s</loc>\n", meta.CanonicalURL)
		for _, alt := range i18n.SupportedLocales {
			fmt.Fprintf(b, `    <xhtml:link rel="alternate" hreflang="%s" href="%s"/>`+"\n", alt, meta.AlternateLinks[string(alt)])
		}
		b.WriteString("  </url>\n")
	}
}

// RobotsTxt renders robots.txt pointing crawlers at the sitemap.
func (s *SitemapService) RobotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", s.metadata.BaseURL())
	return b.String()
}
