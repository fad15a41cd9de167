package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	VisitRepository interface {
		Create(ctx context.Context, visit *model.Visit) error
		Get(ctx context.Context, id uuid.UUID) (*model.Visit, error)
		Update(ctx context.Context, visit *model.Visit) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error)
		ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.Visit, error)
	}

	TreatmentRepository interface {
		Create(ctx context.Context, treatment *model.Treatment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Treatment, error)
		SoftDelete(ctx context.Context, id uuid.UUID) error
		ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Treatment, error)
		ListAreas(ctx context.Context, treatmentID uuid.UUID) ([]*model.TreatmentArea, error)
	}

	ConsentRepository interface {
		Create(ctx context.Context, consent *model.Consent) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consent, error)
	}

	PhotoRepository interface {
		Create(ctx context.Context, photo *model.Photo) error
		Get(ctx context.Context, id uuid.UUID) (*model.Photo, error)
		Update(ctx context.Context, photo *model.Photo) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		// ListByVisit returns the visit's non-deleted photos ordered by
		// (sort_order, created_at) ascending. This ordering is the
		// tie-break for duplicate-key shadowing during matching.
		ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error)
		// FindByKey returns the first non-deleted photo in the visit with
		// the given position, filtered by state only when state is non-nil.
		// Returns (nil, nil) when no photo matches.
		FindByKey(ctx context.Context, visitID uuid.UUID, position string, state *string) (*model.Photo, error)
	}

	CatalogRepository interface {
		CreateProduct(ctx context.Context, product *model.Product) error
		ListProducts(ctx context.Context, activeOnly bool) ([]*model.Product, error)
		CreateTreatedArea(ctx context.Context, area *model.TreatedArea) error
		ListTreatedAreas(ctx context.Context, activeOnly bool) ([]*model.TreatedArea, error)
		CreateTreatmentCategory(ctx context.Context, category *model.TreatmentCategory) error
		ListTreatmentCategories(ctx context.Context, activeOnly bool) ([]*model.TreatmentCategory, error)
	}

	PortfolioRepository interface {
		Create(ctx context.Context, portfolio *model.Portfolio) error
		Get(ctx context.Context, id uuid.UUID) (*model.Portfolio, error)
		SoftDelete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Portfolio, error)
		CreateItem(ctx context.Context, item *model.PortfolioItem) error
		DeleteItem(ctx context.Context, id uuid.UUID) error
		ListItems(ctx context.Context, portfolioID uuid.UUID) ([]*model.PortfolioItem, error)
	}

	CaseSearchRepository interface {
		// SearchCases compiles the criteria into one bounded query and
		// returns ranked case summaries. An empty result is not an error.
		SearchCases(ctx context.Context, criteria *model.SearchCriteria) (*model.CaseSearchResult, error)
	}
)
