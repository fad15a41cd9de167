package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

const (
	cacheKeyProducts   = "products"
	cacheKeyAreas      = "treated_areas"
	cacheKeyCategories = "treatment_categories"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	ListProducts(ctx context.Context, activeOnly bool) ([]*model.Product, error)
	CreateTreatedArea(ctx context.Context, area *model.TreatedArea) error
	ListTreatedAreas(ctx context.Context, activeOnly bool) ([]*model.TreatedArea, error)
	CreateTreatmentCategory(ctx context.Context, category *model.TreatmentCategory) error
	ListTreatmentCategories(ctx context.Context, activeOnly bool) ([]*model.TreatmentCategory, error)
}

// Service caches "all rows" listings briefly; catalogs change rarely and
// are read on every settings screen. Writes invalidate.
type Service struct {
	repo  repository.CatalogRepository
	cache *gocache.Cache
}

func NewService(repo repository.CatalogRepository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *Service) CreateProduct(ctx context.Context, product *model.Product) error {
	product.ID = uuid.New()
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	s.cache.Delete(cacheKeyProducts)
	return nil
}

func (s *Service) ListProducts(ctx context.Context, activeOnly bool) ([]*model.Product, error) {
	if cached, ok := s.cache.Get(cacheKeyProducts); ok {
		return filterProducts(cached.([]*model.Product), activeOnly), nil
	}

	products, err := s.repo.ListProducts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	s.cache.SetDefault(cacheKeyProducts, products)

	return filterProducts(products, activeOnly), nil
}

func (s *Service) CreateTreatedArea(ctx context.Context, area *model.TreatedArea) error {
	area.ID = uuid.New()
	if err := s.repo.CreateTreatedArea(ctx, area); err != nil {
		return fmt.Errorf("failed to create treated area: %w", err)
	}
	s.cache.Delete(cacheKeyAreas)
	return nil
}

func (s *Service) ListTreatedAreas(ctx context.Context, activeOnly bool) ([]*model.TreatedArea, error) {
	if cached, ok := s.cache.Get(cacheKeyAreas); ok {
		return filterAreas(cached.([]*model.TreatedArea), activeOnly), nil
	}

	areas, err := s.repo.ListTreatedAreas(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list treated areas: %w", err)
	}
	s.cache.SetDefault(cacheKeyAreas, areas)

	return filterAreas(areas, activeOnly), nil
}

func (s *Service) CreateTreatmentCategory(ctx context.Context, category *model.TreatmentCategory) error {
	category.ID = uuid.New()
	if err := s.repo.CreateTreatmentCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to create treatment category: %w", err)
	}
	s.cache.Delete(cacheKeyCategories)
	return nil
}

func (s *Service) ListTreatmentCategories(ctx context.Context, activeOnly bool) ([]*model.TreatmentCategory, error) {
	if cached, ok := s.cache.Get(cacheKeyCategories); ok {
		return filterCategories(cached.([]*model.TreatmentCategory), activeOnly), nil
	}

	categories, err := s.repo.ListTreatmentCategories(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment categories: %w", err)
	}
	s.cache.SetDefault(cacheKeyCategories, categories)

	return filterCategories(categories, activeOnly), nil
}

func filterProducts(products []*model.Product, activeOnly bool) []*model.Product {
	if !activeOnly {
		return products
	}
	filtered := make([]*model.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func filterAreas(areas []*model.TreatedArea, activeOnly bool) []*model.TreatedArea {
	if !activeOnly {
		return areas
	}
	filtered := make([]*model.TreatedArea, 0, len(areas))
	for _, a := range areas {
		if a.IsActive {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func filterCategories(categories []*model.TreatmentCategory, activeOnly bool) []*model.TreatmentCategory {
	if !activeOnly {
		return categories
	}
	filtered := make([]*model.TreatmentCategory, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
