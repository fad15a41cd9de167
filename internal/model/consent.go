package model

import (
	"time"

	"github.com/google/uuid"
)

type ConsentType string

const (
	ConsentTypeBotulinum ConsentType = "botulinum"
	ConsentTypeFiller    ConsentType = "filler"
	ConsentTypePhoto     ConsentType = "photo"
)

type Consent struct {
	Base
	PatientID uuid.UUID  `db:"patient_id" json:"patient_id"`
	VisitID   *uuid.UUID `db:"visit_id" json:"visit_id,omitempty"`
	Type      string     `db:"type" json:"type"`
	SignedAt  time.Time  `db:"signed_at" json:"signed_at"`
}

type CreateConsentRequest struct {
	VisitID  *uuid.UUID `json:"visit_id"`
	Type     string     `json:"type" binding:"required,oneof=botulinum filler photo"`
	SignedAt time.Time  `json:"signed_at" binding:"required"`
}
