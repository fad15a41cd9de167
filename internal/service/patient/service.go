package patient

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

type PatientService interface {
	CreatePatient(ctx context.Context, patient *model.Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, patient *model.Patient) error
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	AddConsent(ctx context.Context, consent *model.Consent) error
	RevokeConsent(ctx context.Context, id uuid.UUID) error
	ListConsents(ctx context.Context, patientID uuid.UUID) ([]*model.Consent, error)
}

type Service struct {
	repo        repository.PatientRepository
	consentRepo repository.ConsentRepository
}

func NewService(repo repository.PatientRepository, consentRepo repository.ConsentRepository) *Service {
	return &Service{repo: repo, consentRepo: consentRepo}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) error {
	if err := s.validatePatient(patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}

	patient.ID = uuid.New()
	if err := s.repo.Create(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("patient", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	if err := s.validatePatient(patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

// DeletePatient soft-deletes; the row stays for history and is excluded
// from every read path.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) AddConsent(ctx context.Context, consent *model.Consent) error {
	consent.ID = uuid.New()
	if err := s.consentRepo.Create(ctx, consent); err != nil {
		return fmt.Errorf("failed to add consent: %w", err)
	}
	return nil
}

func (s *Service) RevokeConsent(ctx context.Context, id uuid.UUID) error {
	if err := s.consentRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke consent: %w", err)
	}
	return nil
}

func (s *Service) ListConsents(ctx context.Context, patientID uuid.UUID) ([]*model.Consent, error) {
	consents, err := s.consentRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	return consents, nil
}

func (s *Service) validatePatient(patient *model.Patient) error {
	if patient.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if patient.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if patient.Birthday.IsZero() {
		return fmt.Errorf("birthday is required")
	}
	return nil
}
