package model

import (
	"time"

	"github.com/google/uuid"
)

type Portfolio struct {
	Base
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// PortfolioItem references one patient plus an optional before/after visit
// pair and the single (position, state) key the curator chose to resolve.
type PortfolioItem struct {
	Base
	PortfolioID   uuid.UUID  `db:"portfolio_id" json:"portfolio_id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	BeforeVisitID *uuid.UUID `db:"before_visit_id" json:"before_visit_id,omitempty"`
	AfterVisitID  *uuid.UUID `db:"after_visit_id" json:"after_visit_id,omitempty"`
	PhotoPosition string     `db:"photo_position" json:"photo_position"`
	PhotoState    *string    `db:"photo_state" json:"photo_state,omitempty"`
	Caption       string     `db:"caption" json:"caption"`
	SortOrder     int        `db:"sort_order" json:"sort_order"`
}

// PortfolioItemDetails is a portfolio item decorated with the owning
// patient's name, the referenced visit dates, and the resolved photos.
type PortfolioItemDetails struct {
	PortfolioItem
	PatientFirstName string     `json:"patient_first_name"`
	PatientLastName  string     `json:"patient_last_name"`
	BeforeVisitDate  *time.Time `json:"before_visit_date,omitempty"`
	AfterVisitDate   *time.Time `json:"after_visit_date,omitempty"`
	BeforePhoto      *Photo     `json:"before_photo,omitempty"`
	AfterPhoto       *Photo     `json:"after_photo,omitempty"`
}

type CreatePortfolioRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreatePortfolioItemRequest struct {
	PatientID     uuid.UUID  `json:"patient_id" binding:"required"`
	BeforeVisitID *uuid.UUID `json:"before_visit_id"`
	AfterVisitID  *uuid.UUID `json:"after_visit_id"`
	PhotoPosition string     `json:"photo_position" binding:"required"`
	PhotoState    *string    `json:"photo_state"`
	Caption       string     `json:"caption"`
	SortOrder     int        `json:"sort_order"`
}
