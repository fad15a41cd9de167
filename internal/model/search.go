package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchCriteria is the input to the case search. Every field is optional;
// a nil/empty field means "don't care". Supplied criteria combine with AND,
// values inside a multi-valued criterion combine with OR.
type SearchCriteria struct {
	Ethnicity *string `json:"ethnicity"`
	Sex       *string `json:"sex"`
	AgeMin    *int    `json:"age_min"`
	AgeMax    *int    `json:"age_max"`
	MinVisits *int    `json:"min_visits"`

	// Consent flags: true requires a matching consent row to exist.
	// False means "don't care", never "must not have".
	HasBotulinumConsent bool `json:"has_botulinum_consent"`
	HasFillerConsent    bool `json:"has_filler_consent"`
	HasPhotoConsent     bool `json:"has_photo_consent"`

	VisitDateFrom  *time.Time `json:"visit_date_from"`
	VisitDateTo    *time.Time `json:"visit_date_to"`
	PractitionerID *uuid.UUID `json:"practitioner_id"`
	LotNumber      *string    `json:"lot_number"`

	ProductIDs             []uuid.UUID `json:"product_ids"`
	TreatmentCategorySlugs []string    `json:"treatment_category_slugs"`
	TreatedAreaIDs         []uuid.UUID `json:"treated_area_ids"`
}

// CaseSummary is one patient viewed as a search result. Visit and
// treatment counts are non-deleted totals, not restricted to rows that
// satisfied the filter.
type CaseSummary struct {
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Sex            string    `db:"sex" json:"sex"`
	Birthday       time.Time `db:"birthday" json:"birthday"`
	Ethnicity      string    `db:"ethnicity" json:"ethnicity"`
	Location       string    `db:"location" json:"location"`
	VisitCount     int       `db:"visit_count" json:"visit_count"`
	TreatmentCount int       `db:"treatment_count" json:"treatment_count"`
}

// CaseSearchResult carries the capped result rows plus whether the cap
// cut anything off.
type CaseSearchResult struct {
	Cases     []*CaseSummary `json:"cases"`
	Truncated bool           `json:"truncated"`
}
