package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) repository.PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *model.Portfolio) error {
	query := `
		INSERT INTO portfolios (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	portfolio.CreatedAt = time.Now()
	portfolio.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		portfolio.ID,
		portfolio.Name,
		portfolio.Description,
		portfolio.CreatedAt,
		portfolio.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (r *portfolioRepository) Get(ctx context.Context, id uuid.UUID) (*model.Portfolio, error) {
	query := `SELECT * FROM portfolios WHERE id = $1 AND deleted_at IS NULL`
	var portfolio model.Portfolio
	err := r.db.GetContext(ctx, &portfolio, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE portfolios SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("portfolio not found")
	}

	return nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]*model.Portfolio, error) {
	query := `SELECT * FROM portfolios WHERE deleted_at IS NULL ORDER BY name`
	var portfolios []*model.Portfolio
	err := r.db.SelectContext(ctx, &portfolios, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}

func (r *portfolioRepository) CreateItem(ctx context.Context, item *model.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (
			id, portfolio_id, patient_id, before_visit_id, after_visit_id,
			photo_position, photo_state, caption, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.PortfolioID,
		item.PatientID,
		item.BeforeVisitID,
		item.AfterVisitID,
		item.PhotoPosition,
		item.PhotoState,
		item.Caption,
		item.SortOrder,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return nil
}

func (r *portfolioRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM portfolio_items WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("portfolio item not found")
	}

	return nil
}

func (r *portfolioRepository) ListItems(ctx context.Context, portfolioID uuid.UUID) ([]*model.PortfolioItem, error) {
	query := `
		SELECT * FROM portfolio_items
		WHERE portfolio_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`
	var items []*model.PortfolioItem
	err := r.db.SelectContext(ctx, &items, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}
