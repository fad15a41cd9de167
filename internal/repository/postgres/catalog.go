package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

type catalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, vendor, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Vendor,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, activeOnly bool) ([]*model.Product, error) {
	query := `SELECT * FROM products WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	var products []*model.Product
	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *catalogRepository) CreateTreatedArea(ctx context.Context, area *model.TreatedArea) error {
	query := `
		INSERT INTO treated_areas (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	area.CreatedAt = time.Now()
	area.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		area.ID,
		area.Name,
		area.IsActive,
		area.CreatedAt,
		area.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create treated area: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListTreatedAreas(ctx context.Context, activeOnly bool) ([]*model.TreatedArea, error) {
	query := `SELECT * FROM treated_areas WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	var areas []*model.TreatedArea
	err := r.db.SelectContext(ctx, &areas, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list treated areas: %w", err)
	}
	return areas, nil
}

func (r *catalogRepository) CreateTreatmentCategory(ctx context.Context, category *model.TreatmentCategory) error {
	query := `
		INSERT INTO treatment_categories (id, name, slug, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create treatment category: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListTreatmentCategories(ctx context.Context, activeOnly bool) ([]*model.TreatmentCategory, error) {
	query := `SELECT * FROM treatment_categories WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	var categories []*model.TreatmentCategory
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment categories: %w", err)
	}
	return categories, nil
}
