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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, first_name, last_name, sex, birthday, ethnicity,
			location, phone, email, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.Sex,
		patient.Birthday,
		patient.Ethnicity,
		patient.Location,
		patient.Phone,
		patient.Email,
		patient.Notes,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1 AND deleted_at IS NULL`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, sex = $3, birthday = $4,
			ethnicity = $5, location = $6, phone = $7, email = $8,
			notes = $9, updated_at = $10
		WHERE id = $11 AND deleted_at IS NULL
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.Sex,
		patient.Birthday,
		patient.Ethnicity,
		patient.Location,
		patient.Phone,
		patient.Email,
		patient.Notes,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient not found")
	}

	return nil
}

func (r *patientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE patients SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient not found")
	}

	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients WHERE deleted_at IS NULL ORDER BY last_name, first_name`
	var patients []*model.Patient
	err := r.db.SelectContext(ctx, &patients, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
