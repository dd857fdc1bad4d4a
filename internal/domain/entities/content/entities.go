// Package content defines the application's core content-related domain entities.
package content

// Audience identifies which professional segment a product is sold to.
type Audience string

const (
	AudienceSalon  Audience = "SALON"
	AudienceBarber Audience = "BARBER"
)

// KnownAudiences lists every valid audience tag. Content validation rejects
// anything outside this set.
var KnownAudiences = []Audience{AudienceSalon, AudienceBarber}

// Category is an enumerated catalog grouping tag.
type Category string

const (
	CategoryHairCare    Category = "hair-care"
	CategoryHairColor   Category = "hair-color"
	CategoryStyling     Category = "styling"
	CategoryTreatment   Category = "treatment"
	CategoryTools       Category = "tools"
	CategoryGrooming    Category = "grooming"
)

// KnownCategories lists every valid category tag.
var KnownCategories = []Category{
	CategoryHairCare, CategoryHairColor, CategoryStyling,
	CategoryTreatment, CategoryTools, CategoryGrooming,
}

// Product is a catalog entry. Products are loaded once at startup and are
// immutable for the life of the process.
type Product struct {
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	Brand      string     `json:"brand"`
	Audience   []Audience `json:"audience"`
	Functions  []string   `json:"functions"`
	Categories []Category `json:"categories,omitempty"`
	Summary    string     `json:"summary"`
	Benefits   []string   `json:"benefits"`
	HowToUse   string     `json:"howToUse"`
}

// HasAudience reports whether the product is tagged for the given audience.
func (p *Product) HasAudience(a Audience) bool {
	for _, pa := range p.Audience {
		if pa == a {
			return true
		}
	}
	return false
}

// HasCategory reports whether the product carries the given category tag.
func (p *Product) HasCategory(c Category) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

// ProductFilter narrows a catalog listing. Zero-value fields do not filter.
type ProductFilter struct {
	Audience Audience
	Category Category
	Brand    string
}

// Section is a localized home-page content section (hero, value props,
// brand strip). The Copy map is keyed by locale code.
type Section struct {
	ID    string                       `json:"id"`
	Kind  string                       `json:"kind"`
	Order int                          `json:"order"`
	Copy  map[string]map[string]string `json:"copy"`
}
