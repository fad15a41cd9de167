package model

import (
	"time"

	"github.com/google/uuid"
)

type Visit struct {
	Base
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	VisitDate      time.Time  `db:"visit_date" json:"visit_date"`
	PractitionerID *uuid.UUID `db:"practitioner_id" json:"practitioner_id,omitempty"`
	Notes          string     `db:"notes" json:"notes"`
}

type CreateVisitRequest struct {
	VisitDate      time.Time  `json:"visit_date" binding:"required"`
	PractitionerID *uuid.UUID `json:"practitioner_id"`
	Notes          string     `json:"notes"`
}

type UpdateVisitRequest struct {
	VisitDate      *time.Time `json:"visit_date"`
	PractitionerID *uuid.UUID `json:"practitioner_id"`
	Notes          *string    `json:"notes"`
}
