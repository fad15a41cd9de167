package patient

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type stubPatientRepo struct {
	created *model.Patient
	getErr  error
}

func (s *stubPatientRepo) Create(ctx context.Context, patient *model.Patient) error {
	s.created = patient
	return nil
}
func (s *stubPatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &model.Patient{Base: model.Base{ID: id}}, nil
}
func (s *stubPatientRepo) Update(ctx context.Context, patient *model.Patient) error { return nil }
func (s *stubPatientRepo) SoftDelete(ctx context.Context, id uuid.UUID) error       { return nil }
func (s *stubPatientRepo) List(ctx context.Context) ([]*model.Patient, error)       { return nil, nil }

type stubConsentRepo struct {
	created *model.Consent
}

func (s *stubConsentRepo) Create(ctx context.Context, consent *model.Consent) error {
	s.created = consent
	return nil
}
func (s *stubConsentRepo) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubConsentRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Consent, error) {
	return nil, nil
}

func validPatient() *model.Patient {
	return &model.Patient{
		FirstName: "Maria",
		LastName:  "Santos",
		Sex:       "female",
		Birthday:  time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePatientAssignsID(t *testing.T) {
	repo := &stubPatientRepo{}
	svc := NewService(repo, &stubConsentRepo{})

	p := validPatient()
	require.NoError(t, svc.CreatePatient(context.Background(), p))
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Same(t, p, repo.created)
}

func TestCreatePatientValidation(t *testing.T) {
	svc := NewService(&stubPatientRepo{}, &stubConsentRepo{})

	for name, mutate := range map[string]func(*model.Patient){
		"missing first name": func(p *model.Patient) { p.FirstName = "" },
		"missing last name":  func(p *model.Patient) { p.LastName = "" },
		"missing birthday":   func(p *model.Patient) { p.Birthday = time.Time{} },
	} {
		t.Run(name, func(t *testing.T) {
			p := validPatient()
			mutate(p)
			assert.Error(t, svc.CreatePatient(context.Background(), p))
		})
	}
}

func TestGetPatientNotFound(t *testing.T) {
	svc := NewService(&stubPatientRepo{getErr: sql.ErrNoRows}, &stubConsentRepo{})

	_, err := svc.GetPatient(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestAddConsentAssignsID(t *testing.T) {
	consentRepo := &stubConsentRepo{}
	svc := NewService(&stubPatientRepo{}, consentRepo)

	consent := &model.Consent{
		PatientID: uuid.New(),
		Type:      string(model.ConsentTypePhoto),
		SignedAt:  time.Now(),
	}
	require.NoError(t, svc.AddConsent(context.Background(), consent))
	assert.NotEqual(t, uuid.Nil, consent.ID)
	assert.Same(t, consent, consentRepo.created)
}
