package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	query := `
		INSERT INTO photos (
			id, visit_id, patient_id, photo_position, photo_state,
			file_path, thumbnail_path, width, height, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	photo.CreatedAt = time.Now()
	photo.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		photo.ID,
		photo.VisitID,
		photo.PatientID,
		photo.Position,
		photo.State,
		photo.FilePath,
		photo.ThumbnailPath,
		photo.Width,
		photo.Height,
		photo.SortOrder,
		photo.CreatedAt,
		photo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

func (r *photoRepository) Get(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	query := `SELECT * FROM photos WHERE id = $1 AND deleted_at IS NULL`
	var photo model.Photo
	err := r.db.GetContext(ctx, &photo, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

func (r *photoRepository) Update(ctx context.Context, photo *model.Photo) error {
	query := `
		UPDATE photos
		SET photo_position = $1, photo_state = $2, sort_order = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL
	`
	photo.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		photo.Position,
		photo.State,
		photo.SortOrder,
		photo.UpdatedAt,
		photo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("photo not found")
	}

	return nil
}

func (r *photoRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE photos SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("photo not found")
	}

	return nil
}

func (r *photoRepository) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error) {
	query := `
		SELECT * FROM photos
		WHERE visit_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order ASC, created_at ASC
	`
	var photos []*model.Photo
	err := r.db.SelectContext(ctx, &photos, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (r *photoRepository) FindByKey(ctx context.Context, visitID uuid.UUID, position string, state *string) (*model.Photo, error) {
	query := `
		SELECT * FROM photos
		WHERE visit_id = $1 AND deleted_at IS NULL AND photo_position = $2
	`
	args := []interface{}{visitID, position}

	// State filter is omitted entirely when the caller supplies none;
	// nil state does not mean "state must be empty".
	if state != nil {
		query += ` AND photo_state = $3`
		args = append(args, *state)
	}

	query += ` ORDER BY sort_order ASC, created_at ASC LIMIT 1`

	var photo model.Photo
	err := r.db.GetContext(ctx, &photo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find photo by key: %w", err)
	}
	return &photo, nil
}
