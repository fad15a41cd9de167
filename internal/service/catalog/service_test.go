package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// countingCatalogRepo tracks how many times each listing hits the
// database.
type countingCatalogRepo struct {
	products      []*model.Product
	productCalls  int
	areas         []*model.TreatedArea
	areaCalls     int
	categories    []*model.TreatmentCategory
	categoryCalls int
}

func (r *countingCatalogRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return nil
}
func (r *countingCatalogRepo) ListProducts(ctx context.Context, activeOnly bool) ([]*model.Product, error) {
	r.productCalls++
	return r.products, nil
}
func (r *countingCatalogRepo) CreateTreatedArea(ctx context.Context, area *model.TreatedArea) error {
	return nil
}
func (r *countingCatalogRepo) ListTreatedAreas(ctx context.Context, activeOnly bool) ([]*model.TreatedArea, error) {
	r.areaCalls++
	return r.areas, nil
}
func (r *countingCatalogRepo) CreateTreatmentCategory(ctx context.Context, category *model.TreatmentCategory) error {
	return nil
}
func (r *countingCatalogRepo) ListTreatmentCategories(ctx context.Context, activeOnly bool) ([]*model.TreatmentCategory, error) {
	r.categoryCalls++
	return r.categories, nil
}

func TestListProductsServesFromCache(t *testing.T) {
	repo := &countingCatalogRepo{products: []*model.Product{
		{Name: "Botulinum A", IsActive: true},
		{Name: "Retired Filler", IsActive: false},
	}}
	svc := NewService(repo, time.Minute)

	first, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	assert.Equal(t, 1, repo.productCalls)
}

func TestListProductsActiveOnlyFiltersCachedRows(t *testing.T) {
	repo := &countingCatalogRepo{products: []*model.Product{
		{Name: "Botulinum A", IsActive: true},
		{Name: "Retired Filler", IsActive: false},
	}}
	svc := NewService(repo, time.Minute)

	active, err := svc.ListProducts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Botulinum A", active[0].Name)

	// The active filter applies in memory; the cache holds all rows.
	all, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1, repo.productCalls)
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	repo := &countingCatalogRepo{}
	svc := NewService(repo, time.Minute)

	_, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.productCalls)

	require.NoError(t, svc.CreateProduct(context.Background(), &model.Product{Name: "New"}))

	_, err = svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.productCalls)
}

func TestCreateProductAssignsID(t *testing.T) {
	svc := NewService(&countingCatalogRepo{}, time.Minute)

	p := &model.Product{Name: "Botulinum A"}
	require.NoError(t, svc.CreateProduct(context.Background(), p))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", p.ID.String())
}

func TestListTreatmentCategoriesCaches(t *testing.T) {
	repo := &countingCatalogRepo{categories: []*model.TreatmentCategory{
		{Name: "Botulinum Toxin", Slug: "botulinum-toxin", IsActive: true},
	}}
	svc := NewService(repo, time.Minute)

	for i := 0; i < 3; i++ {
		categories, err := svc.ListTreatmentCategories(context.Background(), true)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	}
	assert.Equal(t, 1, repo.categoryCalls)
}
