package model

import (
	"github.com/google/uuid"
)

// Photo belongs to exactly one visit. PatientID is a denormalized copy of
// the visit's patient so photo queries by patient avoid a join.
type Photo struct {
	Base
	VisitID       uuid.UUID `db:"visit_id" json:"visit_id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	Position      *string   `db:"photo_position" json:"photo_position,omitempty"`
	State         *string   `db:"photo_state" json:"photo_state,omitempty"`
	FilePath      string    `db:"file_path" json:"file_path"`
	ThumbnailPath string    `db:"thumbnail_path" json:"thumbnail_path"`
	Width         int       `db:"width" json:"width"`
	Height        int       `db:"height" json:"height"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
}

type CreatePhotoRequest struct {
	Position      *string `json:"photo_position"`
	State         *string `json:"photo_state"`
	FilePath      string  `json:"file_path" binding:"required"`
	ThumbnailPath string  `json:"thumbnail_path"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	SortOrder     int     `json:"sort_order"`
}

type UpdatePhotoRequest struct {
	Position  *string `json:"photo_position"`
	State     *string `json:"photo_state"`
	SortOrder *int    `json:"sort_order"`
}
