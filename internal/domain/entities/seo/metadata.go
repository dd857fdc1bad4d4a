// Package seo defines derived page-metadata entities. Nothing in this
// package is persisted; values are computed per request.
package seo

// PageMetadata carries the SEO surface for one locale/route pair.
type PageMetadata struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	CanonicalURL   string            `json:"canonicalUrl"`
	AlternateLinks map[string]string `json:"alternateLinks"` // locale code -> absolute URL
}

// Crumb is one entry of an ordered breadcrumb trail.
type Crumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BreadcrumbList is the schema.org BreadcrumbList structured-data object.
type BreadcrumbList struct {
	Context  string           `json:"@context"`
	Type     string           `json:"@type"`
	Elements []BreadcrumbItem `json:"itemListElement"`
}

// BreadcrumbItem is a single schema.org ListItem. Position is 1-based.
type BreadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// Organization is the schema.org Organization structured-data object.
type Organization struct {
	Context string   `json:"@context"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Logo    string   `json:"logo,omitempty"`
	SameAs  []string `json:"sameAs,omitempty"`
}
