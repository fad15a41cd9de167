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

type treatmentRepository struct {
	BaseRepository
}

func NewTreatmentRepository(db *sqlx.DB) repository.TreatmentRepository {
	return &treatmentRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts the treatment and its area rows in one transaction.
func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) error {
	treatment.CreatedAt = time.Now()
	treatment.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO treatments (
				id, visit_id, product_id, lot_number, category_slug,
				total_units, total_cost, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err := tx.ExecContext(ctx, query,
			treatment.ID,
			treatment.VisitID,
			treatment.ProductID,
			treatment.LotNumber,
			treatment.CategorySlug,
			treatment.TotalUnits,
			treatment.TotalCost,
			treatment.CreatedAt,
			treatment.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create treatment: %w", err)
		}

		areaQuery := `
			INSERT INTO treatment_areas (id, treatment_id, treated_area_id, units, cost)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, area := range treatment.Areas {
			area.TreatmentID = treatment.ID
			if _, err := tx.ExecContext(ctx, areaQuery,
				area.ID,
				area.TreatmentID,
				area.TreatedAreaID,
				area.Units,
				area.Cost,
			); err != nil {
				return fmt.Errorf("failed to create treatment area: %w", err)
			}
		}

		return nil
	})
}

func (r *treatmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Treatment, error) {
	query := `SELECT * FROM treatments WHERE id = $1 AND deleted_at IS NULL`
	var treatment model.Treatment
	err := r.GetDB().GetContext(ctx, &treatment, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}

	areas, err := r.ListAreas(ctx, id)
	if err != nil {
		return nil, err
	}
	treatment.Areas = areas

	return &treatment, nil
}

// SoftDelete marks the treatment deleted and hard-deletes its area rows;
// join rows have no life of their own.
func (r *treatmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE treatments SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
			time.Now(), id,
		)
		if err != nil {
			return fmt.Errorf("failed to delete treatment: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("treatment not found")
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM treatment_areas WHERE treatment_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete treatment areas: %w", err)
		}

		return nil
	})
}

func (r *treatmentRepository) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Treatment, error) {
	query := `
		SELECT * FROM treatments
		WHERE visit_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`
	var treatments []*model.Treatment
	err := r.GetDB().SelectContext(ctx, &treatments, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

func (r *treatmentRepository) ListAreas(ctx context.Context, treatmentID uuid.UUID) ([]*model.TreatmentArea, error) {
	query := `SELECT * FROM treatment_areas WHERE treatment_id = $1`
	var areas []*model.TreatmentArea
	err := r.GetDB().SelectContext(ctx, &areas, query, treatmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment areas: %w", err)
	}
	return areas, nil
}
