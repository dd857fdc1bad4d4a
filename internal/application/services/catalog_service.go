package services

import (
	"fmt"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/content"
	store "github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
)

// CatalogService answers product catalog queries against the immutable
// content store.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new catalog application service
func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// ListProducts returns catalog entries matching the filter, in source
// declaration order. A nil filter returns the full catalog.
func (s *CatalogService) ListProducts(filter *content.ProductFilter) []*content.Product {
	all := s.store.Products()
	if filter == nil || (filter.Audience == "" && filter.Category == "" && filter.Brand == "") {
		return all
	}

	matched := make([]*content.Product, 0, len(all))
	for _, p := range all {
		if filter.Audience != "" && !p.HasAudience(filter.Audience) {
			continue
		}
		if filter.Category != "" && !p.HasCategory(filter.Category) {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

// GetProduct returns the product with the given slug, or nil when no such
// product exists. A miss is an expected outcome for stale deep links.
func (s *CatalogService) GetProduct(slug string) (*content.Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("product slug cannot be empty")
	}
	return s.store.ProductBySlug(slug), nil
}

// ListBrands returns the distinct brands in first-appearance order.
func (s *CatalogService) ListBrands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, p := range s.store.Products() {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}
