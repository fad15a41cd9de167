package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type PortfolioService interface {
	CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error
	GetPortfolio(ctx context.Context, id uuid.UUID) (*model.Portfolio, error)
	DeletePortfolio(ctx context.Context, id uuid.UUID) error
	ListPortfolios(ctx context.Context) ([]*model.Portfolio, error)
	AddItem(ctx context.Context, item *model.PortfolioItem) error
	RemoveItem(ctx context.Context, id uuid.UUID) error
	ListItemsWithDetails(ctx context.Context, portfolioID uuid.UUID) ([]*model.PortfolioItemDetails, error)
}

type Service struct {
	repo        repository.PortfolioRepository
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
	photoRepo   repository.PhotoRepository
}

func NewService(
	repo repository.PortfolioRepository,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	photoRepo repository.PhotoRepository,
) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
		photoRepo:   photoRepo,
	}
}

func (s *Service) CreatePortfolio(ctx context.Context, portfolio *model.Portfolio) error {
	portfolio.ID = uuid.New()
	if err := s.repo.Create(ctx, portfolio); err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (s *Service) GetPortfolio(ctx context.Context, id uuid.UUID) (*model.Portfolio, error) {
	portfolio, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("portfolio", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}

func (s *Service) DeletePortfolio(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListPortfolios(ctx context.Context) ([]*model.Portfolio, error) {
	return s.repo.List(ctx)
}

func (s *Service) AddItem(ctx context.Context, item *model.PortfolioItem) error {
	item.ID = uuid.New()
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add portfolio item: %w", err)
	}
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}

// ListItemsWithDetails resolves each item's single curated photo key per
// side and decorates it with the owning patient's name and the visit
// dates. A missing or deleted patient yields the "Unknown" placeholder
// instead of failing: this is a best-effort read path.
func (s *Service) ListItemsWithDetails(ctx context.Context, portfolioID uuid.UUID) ([]*model.PortfolioItemDetails, error) {
	items, err := s.repo.ListItems(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}

	details := make([]*model.PortfolioItemDetails, 0, len(items))
	for _, item := range items {
		d := &model.PortfolioItemDetails{PortfolioItem: *item}

		patient, err := s.patientRepo.Get(ctx, item.PatientID)
		if err != nil || patient == nil {
			if err != nil {
				log.Warn().Err(err).
					Str("portfolio_item_id", item.ID.String()).
					Str("patient_id", item.PatientID.String()).
					Msg("portfolio item references unresolvable patient")
			}
			d.PatientFirstName = "Unknown"
			d.PatientLastName = ""
		} else {
			d.PatientFirstName = patient.FirstName
			d.PatientLastName = patient.LastName
		}

		d.BeforeVisitDate, d.BeforePhoto = s.resolveSide(ctx, item.BeforeVisitID, item)
		d.AfterVisitDate, d.AfterPhoto = s.resolveSide(ctx, item.AfterVisitID, item)

		details = append(details, d)
	}

	return details, nil
}

// resolveSide looks up the single photo the curator chose for one side of
// the item. The state filter is omitted entirely when the item carries no
// state.
func (s *Service) resolveSide(ctx context.Context, visitID *uuid.UUID, item *model.PortfolioItem) (*time.Time, *model.Photo) {
	if visitID == nil {
		return nil, nil
	}

	var visitDate *time.Time
	visit, err := s.visitRepo.Get(ctx, *visitID)
	if err == nil && visit != nil {
		date := visit.VisitDate
		visitDate = &date
	}

	photo, err := s.photoRepo.FindByKey(ctx, *visitID, item.PhotoPosition, item.PhotoState)
	if err != nil {
		log.Warn().Err(err).
			Str("portfolio_item_id", item.ID.String()).
			Str("visit_id", visitID.String()).
			Msg("failed to resolve portfolio item photo")
		return visitDate, nil
	}

	return visitDate, photo
}
