package visit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type VisitService interface {
	CreateVisit(ctx context.Context, visit *model.Visit) error
	GetVisit(ctx context.Context, id uuid.UUID) (*model.Visit, error)
	UpdateVisit(ctx context.Context, visit *model.Visit) error
	DeleteVisit(ctx context.Context, id uuid.UUID) error
	ListVisits(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error)
	AddTreatment(ctx context.Context, treatment *model.Treatment) error
	DeleteTreatment(ctx context.Context, id uuid.UUID) error
	ListTreatments(ctx context.Context, visitID uuid.UUID) ([]*model.Treatment, error)
	AddPhoto(ctx context.Context, photo *model.Photo) error
	UpdatePhoto(ctx context.Context, photo *model.Photo) error
	DeletePhoto(ctx context.Context, id uuid.UUID) error
	ListPhotos(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error)
}

type Service struct {
	repo          repository.VisitRepository
	treatmentRepo repository.TreatmentRepository
	photoRepo     repository.PhotoRepository
}

func NewService(
	repo repository.VisitRepository,
	treatmentRepo repository.TreatmentRepository,
	photoRepo repository.PhotoRepository,
) *Service {
	return &Service{
		repo:          repo,
		treatmentRepo: treatmentRepo,
		photoRepo:     photoRepo,
	}
}

func (s *Service) CreateVisit(ctx context.Context, visit *model.Visit) error {
	if visit.PatientID == uuid.Nil {
		return fmt.Errorf("patient ID is required")
	}
	if visit.VisitDate.IsZero() {
		return fmt.Errorf("visit date is required")
	}

	visit.ID = uuid.New()
	if err := s.repo.Create(ctx, visit); err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (s *Service) GetVisit(ctx context.Context, id uuid.UUID) (*model.Visit, error) {
	visit, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("visit", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return visit, nil
}

func (s *Service) UpdateVisit(ctx context.Context, visit *model.Visit) error {
	if err := s.repo.Update(ctx, visit); err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}
	return nil
}

func (s *Service) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	return nil
}

func (s *Service) ListVisits(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error) {
	visits, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (s *Service) AddTreatment(ctx context.Context, treatment *model.Treatment) error {
	if treatment.VisitID == uuid.Nil {
		return fmt.Errorf("visit ID is required")
	}

	treatment.ID = uuid.New()
	for _, area := range treatment.Areas {
		area.ID = uuid.New()
	}

	if err := s.treatmentRepo.Create(ctx, treatment); err != nil {
		return fmt.Errorf("failed to add treatment: %w", err)
	}
	return nil
}

func (s *Service) DeleteTreatment(ctx context.Context, id uuid.UUID) error {
	if err := s.treatmentRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	return nil
}

func (s *Service) ListTreatments(ctx context.Context, visitID uuid.UUID) ([]*model.Treatment, error) {
	treatments, err := s.treatmentRepo.ListByVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}

	for _, treatment := range treatments {
		areas, err := s.treatmentRepo.ListAreas(ctx, treatment.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load areas for treatment %s: %w", treatment.ID, err)
		}
		treatment.Areas = areas
	}

	return treatments, nil
}

func (s *Service) AddPhoto(ctx context.Context, photo *model.Photo) error {
	if photo.VisitID == uuid.Nil {
		return fmt.Errorf("visit ID is required")
	}

	// Denormalize the owning patient onto the photo row.
	visit, err := s.repo.Get(ctx, photo.VisitID)
	if err != nil {
		return fmt.Errorf("failed to get visit for photo: %w", err)
	}
	photo.PatientID = visit.PatientID

	photo.ID = uuid.New()
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return fmt.Errorf("failed to add photo: %w", err)
	}
	return nil
}

func (s *Service) UpdatePhoto(ctx context.Context, photo *model.Photo) error {
	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	return nil
}

func (s *Service) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	if err := s.photoRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

func (s *Service) ListPhotos(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error) {
	photos, err := s.photoRepo.ListByVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}
