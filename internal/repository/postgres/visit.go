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

type visitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *model.Visit) error {
	query := `
		INSERT INTO visits (
			id, patient_id, visit_date, practitioner_id, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	visit.CreatedAt = time.Now()
	visit.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		visit.ID,
		visit.PatientID,
		visit.VisitDate,
		visit.PractitionerID,
		visit.Notes,
		visit.CreatedAt,
		visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (r *visitRepository) Get(ctx context.Context, id uuid.UUID) (*model.Visit, error) {
	query := `SELECT * FROM visits WHERE id = $1 AND deleted_at IS NULL`
	var visit model.Visit
	err := r.db.GetContext(ctx, &visit, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return &visit, nil
}

func (r *visitRepository) Update(ctx context.Context, visit *model.Visit) error {
	query := `
		UPDATE visits
		SET visit_date = $1, practitioner_id = $2, notes = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL
	`
	visit.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		visit.VisitDate,
		visit.PractitionerID,
		visit.Notes,
		visit.UpdatedAt,
		visit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("visit not found")
	}

	return nil
}

func (r *visitRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE visits SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("visit not found")
	}

	return nil
}

func (r *visitRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error) {
	query := `
		SELECT * FROM visits
		WHERE patient_id = $1 AND deleted_at IS NULL
		ORDER BY visit_date DESC
	`
	var visits []*model.Visit
	err := r.db.SelectContext(ctx, &visits, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.Visit, error) {
	query := `
		SELECT * FROM visits
		WHERE visit_date >= $1 AND visit_date <= $2 AND deleted_at IS NULL
		ORDER BY visit_date ASC
	`
	var visits []*model.Visit
	err := r.db.SelectContext(ctx, &visits, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits by date range: %w", err)
	}
	return visits, nil
}
