package model

import (
	"github.com/google/uuid"
)

type Treatment struct {
	Base
	VisitID      uuid.UUID  `db:"visit_id" json:"visit_id"`
	ProductID    *uuid.UUID `db:"product_id" json:"product_id,omitempty"`
	LotNumber    string     `db:"lot_number" json:"lot_number"`
	CategorySlug string     `db:"category_slug" json:"category_slug"`
	TotalUnits   float64    `db:"total_units" json:"total_units"`
	TotalCost    float64    `db:"total_cost" json:"total_cost"`

	// Loaded separately; hard-deleted with the treatment.
	Areas []*TreatmentArea `db:"-" json:"areas,omitempty"`
}

// TreatmentArea links a treatment to a treated area with per-area totals.
type TreatmentArea struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TreatmentID   uuid.UUID `db:"treatment_id" json:"treatment_id"`
	TreatedAreaID uuid.UUID `db:"treated_area_id" json:"treated_area_id"`
	Units         float64   `db:"units" json:"units"`
	Cost          float64   `db:"cost" json:"cost"`
}

type CreateTreatmentRequest struct {
	ProductID    *uuid.UUID                   `json:"product_id"`
	LotNumber    string                       `json:"lot_number"`
	CategorySlug string                       `json:"category_slug"`
	TotalUnits   float64                      `json:"total_units"`
	TotalCost    float64                      `json:"total_cost"`
	Areas        []CreateTreatmentAreaRequest `json:"areas"`
}

type CreateTreatmentAreaRequest struct {
	TreatedAreaID uuid.UUID `json:"treated_area_id" binding:"required"`
	Units         float64   `json:"units"`
	Cost          float64   `json:"cost"`
}
