package portfolio

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

type stubPortfolioRepo struct {
	items  []*model.PortfolioItem
	getErr error
}

func (s *stubPortfolioRepo) Create(ctx context.Context, portfolio *model.Portfolio) error { return nil }
func (s *stubPortfolioRepo) Get(ctx context.Context, id uuid.UUID) (*model.Portfolio, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &model.Portfolio{Base: model.Base{ID: id}}, nil
}
func (s *stubPortfolioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubPortfolioRepo) List(ctx context.Context) ([]*model.Portfolio, error) {
	return nil, nil
}
func (s *stubPortfolioRepo) CreateItem(ctx context.Context, item *model.PortfolioItem) error {
	return nil
}
func (s *stubPortfolioRepo) DeleteItem(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubPortfolioRepo) ListItems(ctx context.Context, portfolioID uuid.UUID) ([]*model.PortfolioItem, error) {
	return s.items, nil
}

type stubPatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func (s *stubPatientRepo) Create(ctx context.Context, patient *model.Patient) error { return nil }
func (s *stubPatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	if p, ok := s.patients[id]; ok {
		return p, nil
	}
	return nil, sql.ErrNoRows
}
func (s *stubPatientRepo) Update(ctx context.Context, patient *model.Patient) error { return nil }
func (s *stubPatientRepo) SoftDelete(ctx context.Context, id uuid.UUID) error       { return nil }
func (s *stubPatientRepo) List(ctx context.Context) ([]*model.Patient, error)       { return nil, nil }

type stubVisitRepo struct {
	visits map[uuid.UUID]*model.Visit
}

func (s *stubVisitRepo) Create(ctx context.Context, visit *model.Visit) error { return nil }
func (s *stubVisitRepo) Get(ctx context.Context, id uuid.UUID) (*model.Visit, error) {
	if v, ok := s.visits[id]; ok {
		return v, nil
	}
	return nil, sql.ErrNoRows
}
func (s *stubVisitRepo) Update(ctx context.Context, visit *model.Visit) error { return nil }
func (s *stubVisitRepo) SoftDelete(ctx context.Context, id uuid.UUID) error   { return nil }
func (s *stubVisitRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error) {
	return nil, nil
}
func (s *stubVisitRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*model.Visit, error) {
	return nil, nil
}

// stubPhotoFinder records FindByKey calls so tests can assert on the
// lookup key the service built.
type stubPhotoFinder struct {
	photos     map[uuid.UUID]*model.Photo
	lastStates []*string
}

func (s *stubPhotoFinder) Create(ctx context.Context, photo *model.Photo) error { return nil }
func (s *stubPhotoFinder) Get(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	return nil, nil
}
func (s *stubPhotoFinder) Update(ctx context.Context, photo *model.Photo) error { return nil }
func (s *stubPhotoFinder) SoftDelete(ctx context.Context, id uuid.UUID) error   { return nil }
func (s *stubPhotoFinder) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error) {
	return nil, nil
}
func (s *stubPhotoFinder) FindByKey(ctx context.Context, visitID uuid.UUID, position string, state *string) (*model.Photo, error) {
	s.lastStates = append(s.lastStates, state)
	return s.photos[visitID], nil
}

func TestListItemsWithDetailsResolvesBothSides(t *testing.T) {
	patientID := uuid.New()
	beforeVisitID := uuid.New()
	afterVisitID := uuid.New()
	beforeDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	afterDate := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	item := &model.PortfolioItem{
		Base:          model.Base{ID: uuid.New()},
		PatientID:     patientID,
		BeforeVisitID: &beforeVisitID,
		AfterVisitID:  &afterVisitID,
		PhotoPosition: "front",
	}

	svc := NewService(
		&stubPortfolioRepo{items: []*model.PortfolioItem{item}},
		&stubPatientRepo{patients: map[uuid.UUID]*model.Patient{
			patientID: {FirstName: "Maria", LastName: "Santos"},
		}},
		&stubVisitRepo{visits: map[uuid.UUID]*model.Visit{
			beforeVisitID: {VisitDate: beforeDate},
			afterVisitID:  {VisitDate: afterDate},
		}},
		&stubPhotoFinder{photos: map[uuid.UUID]*model.Photo{
			beforeVisitID: {FilePath: "before.jpg"},
			afterVisitID:  {FilePath: "after.jpg"},
		}},
	)

	details, err := svc.ListItemsWithDetails(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, details, 1)

	d := details[0]
	assert.Equal(t, "Maria", d.PatientFirstName)
	assert.Equal(t, "Santos", d.PatientLastName)
	require.NotNil(t, d.BeforeVisitDate)
	assert.Equal(t, beforeDate, *d.BeforeVisitDate)
	require.NotNil(t, d.AfterVisitDate)
	assert.Equal(t, afterDate, *d.AfterVisitDate)
	require.NotNil(t, d.BeforePhoto)
	assert.Equal(t, "before.jpg", d.BeforePhoto.FilePath)
	require.NotNil(t, d.AfterPhoto)
	assert.Equal(t, "after.jpg", d.AfterPhoto.FilePath)
}

func TestListItemsWithDetailsUnknownPatient(t *testing.T) {
	item := &model.PortfolioItem{
		Base:          model.Base{ID: uuid.New()},
		PatientID:     uuid.New(),
		PhotoPosition: "front",
	}

	svc := NewService(
		&stubPortfolioRepo{items: []*model.PortfolioItem{item}},
		&stubPatientRepo{patients: map[uuid.UUID]*model.Patient{}},
		&stubVisitRepo{},
		&stubPhotoFinder{},
	)

	details, err := svc.ListItemsWithDetails(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Unknown", details[0].PatientFirstName)
	assert.Equal(t, "", details[0].PatientLastName)
	assert.Nil(t, details[0].BeforePhoto)
	assert.Nil(t, details[0].AfterPhoto)
}

func TestListItemsWithDetailsPassesStateThrough(t *testing.T) {
	visitID := uuid.New()
	state := "relaxed"

	withState := &model.PortfolioItem{
		Base:          model.Base{ID: uuid.New()},
		PatientID:     uuid.New(),
		BeforeVisitID: &visitID,
		PhotoPosition: "front",
		PhotoState:    &state,
	}
	withoutState := &model.PortfolioItem{
		Base:          model.Base{ID: uuid.New()},
		PatientID:     uuid.New(),
		BeforeVisitID: &visitID,
		PhotoPosition: "front",
	}

	finder := &stubPhotoFinder{}
	svc := NewService(
		&stubPortfolioRepo{items: []*model.PortfolioItem{withState, withoutState}},
		&stubPatientRepo{},
		&stubVisitRepo{},
		finder,
	)

	_, err := svc.ListItemsWithDetails(context.Background(), uuid.New())
	require.NoError(t, err)

	// One lookup per side that has a visit ID, in item order.
	require.Len(t, finder.lastStates, 2)
	require.NotNil(t, finder.lastStates[0])
	assert.Equal(t, "relaxed", *finder.lastStates[0])
	assert.Nil(t, finder.lastStates[1])
}

func TestGetPortfolioNotFound(t *testing.T) {
	svc := NewService(
		&stubPortfolioRepo{getErr: sql.ErrNoRows},
		&stubPatientRepo{},
		&stubVisitRepo{},
		&stubPhotoFinder{},
	)

	_, err := svc.GetPortfolio(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}
