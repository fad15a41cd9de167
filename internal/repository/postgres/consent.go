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

type consentRepository struct {
	db *sqlx.DB
}

func NewConsentRepository(db *sqlx.DB) repository.ConsentRepository {
	return &consentRepository{db: db}
}

func (r *consentRepository) Create(ctx context.Context, consent *model.Consent) error {
	query := `
		INSERT INTO consents (
			id, patient_id, visit_id, type, signed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	consent.CreatedAt = time.Now()
	consent.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		consent.ID,
		consent.PatientID,
		consent.VisitID,
		consent.Type,
		consent.SignedAt,
		consent.CreatedAt,
		consent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create consent: %w", err)
	}
	return nil
}

func (r *consentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE consents SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete consent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("consent not found")
	}

	return nil
}

func (r *consentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consent, error) {
	query := `
		SELECT * FROM consents
		WHERE patient_id = $1 AND deleted_at IS NULL
		ORDER BY signed_at DESC
	`
	var consents []*model.Consent
	err := r.db.SelectContext(ctx, &consents, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	return consents, nil
}
