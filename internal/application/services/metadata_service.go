package services

import (
	"fmt"
	"strings"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/seo"
	store "github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
)

// Route pairs a path template with the translation keys that drive its
// title and description.
type Route struct {
	Template       string
	TitleKey       string
	DescriptionKey string
}

// StaticRoutes lists every locale-prefixed page of the site. Order here is
// the order pages appear in the sitemap.
var StaticRoutes = []Route{
	{Template: "/", TitleKey: "home.hero.title", DescriptionKey: "home.hero.subtitle"},
	{Template: "/products", TitleKey: "products.title", DescriptionKey: "products.lede"},
	{Template: "/partnership", TitleKey: "partnership.title", DescriptionKey: "partnership.lede"},
	{Template: "/education", TitleKey: "education.title", DescriptionKey: "education.lede"},
	{Template: "/contact", TitleKey: "contact.title", DescriptionKey: "contact.lede"},
	{Template: "/legal/privacy", TitleKey: "legal.privacy", DescriptionKey: "legal.privacy"},
	{Template: "/legal/terms", TitleKey: "legal.terms", DescriptionKey: "legal.terms"},
}

// MetadataService derives per-page SEO metadata from locale and route. It
// performs no I/O; everything is computed from the content store and the
// configured site base URL.
type MetadataService struct {
	store   *store.Store
	baseURL string
}

// NewMetadataService creates a new metadata application service. baseURL
// must be absolute; a trailing slash is stripped.
func NewMetadataService(s *store.Store, baseURL string) *MetadataService {
	return &MetadataService{
		store:   s,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured site base URL without a trailing slash.
func (s *MetadataService) BaseURL() string {
	return s.baseURL
}

// BuildMetadata computes the metadata for one locale/route pair. The
// alternate-link set always contains exactly one entry per supported
// locale, including the current one, and the canonical URL equals the
// current locale's entry.
func (s *MetadataService) BuildMetadata(locale i18n.Locale, routeTemplate string, routeParams map[string]string) seo.PageMetadata {
	path := ExpandRoute(routeTemplate, routeParams)

	alternates := make(map[string]string, len(i18n.SupportedLocales))
	for _, alt := range i18n.SupportedLocales {
		alternates[string(alt)] = s.localizedURL(alt, path)
	}

	dict := s.store.Translations(locale)
	title, description := s.copyForRoute(dict, routeTemplate, routeParams)

	return seo.PageMetadata{
		Title:          title,
		Description:    description,
		CanonicalURL:   alternates[string(locale)],
		AlternateLinks: alternates,
	}
}

// BuildBreadcrumbs emits a schema.org BreadcrumbList for an ordered trail.
// Positions are 1-based and strictly increasing; relative item URLs are
// absolutized against the site base.
func (s *MetadataService) BuildBreadcrumbs(crumbs []seo.Crumb) seo.BreadcrumbList {
	elements := make([]seo.BreadcrumbItem, len(crumbs))
	for i, crumb := range crumbs {
		elements[i] = seo.BreadcrumbItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     s.absolutize(crumb.URL),
		}
	}

	return seo.BreadcrumbList{
		Context:  "https://schema.org",
		Type:     "BreadcrumbList",
		Elements: elements,
	}
}

// BuildOrganization emits the site's schema.org Organization object.
func (s *MetadataService) BuildOrganization() seo.Organization {
	return seo.Organization{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    "Alfabeauty",
		URL:     s.baseURL,
		Logo:    s.baseURL + "/images/logo.png",
	}
}

func (s *MetadataService) copyForRoute(dict i18n.Dictionary, routeTemplate string, routeParams map[string]string) (title, description string) {
	// Product detail pages take their copy from the product itself.
	if routeTemplate == "/products/:slug" {
		if product := s.store.ProductBySlug(routeParams["slug"]); product != nil {
			return product.Name, product.Summary
		}
		return dict["products.notFound"], dict["products.lede"]
	}

	for _, route := range StaticRoutes {
		if route.Template == routeTemplate {
			return dict[route.TitleKey], dict[route.DescriptionKey]
		}
	}

	// Unregistered route: fall back to the site-wide copy rather than fail.
	return dict["home.hero.title"], dict["home.hero.subtitle"]
}

// localizedURL builds base + "/" + locale + path. The root template yields
// the bare locale URL without a trailing slash.
func (s *MetadataService) localizedURL(locale i18n.Locale, path string) string {
	if path == "/" {
		return fmt.Sprintf("%s/%s", s.baseURL, locale)
	}
	return fmt.Sprintf("%s/%s%s", s.baseURL, locale, path)
}

func (s *MetadataService) absolutize(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return s.baseURL + url
}

// ExpandRoute substitutes named params into a path template, e.g.
// "/products/:slug" with {slug: "argan-shine-serum"}.
func ExpandRoute(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}

	segments := strings.Split(template, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			if value, found := params[segment[1:]]; found {
				segments[i] = value
			}
		}
	}
	return strings.Join(segments, "/")
}
