package photocompare

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// stubPhotoRepo serves canned photo lists keyed by visit ID.
type stubPhotoRepo struct {
	byVisit map[uuid.UUID][]*model.Photo
	err     error
}

func (s *stubPhotoRepo) Create(ctx context.Context, photo *model.Photo) error { return nil }
func (s *stubPhotoRepo) Get(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	return nil, nil
}
func (s *stubPhotoRepo) Update(ctx context.Context, photo *model.Photo) error  { return nil }
func (s *stubPhotoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error    { return nil }
func (s *stubPhotoRepo) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*model.Photo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byVisit[visitID], nil
}
func (s *stubPhotoRepo) FindByKey(ctx context.Context, visitID uuid.UUID, position string, state *string) (*model.Photo, error) {
	return nil, nil
}

func TestCompareVisitPhotosSortsByPositionThenState(t *testing.T) {
	beforeID := uuid.New()
	afterID := uuid.New()

	repo := &stubPhotoRepo{byVisit: map[uuid.UUID][]*model.Photo{
		beforeID: {
			photoWith(strPtr("forehead"), strPtr("relaxed"), "b1.jpg"),
			photoWith(strPtr("chin"), nil, "b2.jpg"),
			photoWith(strPtr("forehead"), strPtr("contracted"), "b3.jpg"),
		},
		afterID: {
			photoWith(strPtr("forehead"), strPtr("relaxed"), "a1.jpg"),
		},
	}}

	svc := NewService(repo)
	pairs, err := svc.CompareVisitPhotos(context.Background(), beforeID, afterID)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, "chin", pairs[0].Position)
	assert.Equal(t, "forehead", pairs[1].Position)
	require.NotNil(t, pairs[1].State)
	assert.Equal(t, "contracted", *pairs[1].State)
	assert.Equal(t, "forehead", pairs[2].Position)
	require.NotNil(t, pairs[2].State)
	assert.Equal(t, "relaxed", *pairs[2].State)
}

func TestCompareVisitPhotosEmptyVisits(t *testing.T) {
	repo := &stubPhotoRepo{byVisit: map[uuid.UUID][]*model.Photo{}}

	svc := NewService(repo)
	pairs, err := svc.CompareVisitPhotos(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestCompareVisitPhotosIsIdempotent(t *testing.T) {
	beforeID := uuid.New()
	afterID := uuid.New()

	repo := &stubPhotoRepo{byVisit: map[uuid.UUID][]*model.Photo{
		beforeID: {
			photoWith(strPtr("forehead"), strPtr("relaxed"), "b1.jpg"),
			photoWith(strPtr("chin"), nil, "b2.jpg"),
			photoWith(strPtr("forehead"), strPtr("relaxed"), "shadowed.jpg"),
		},
		afterID: {
			photoWith(strPtr("forehead"), strPtr("contracted"), "a1.jpg"),
			photoWith(strPtr("chin"), nil, "a2.jpg"),
		},
	}}

	svc := NewService(repo)

	first, err := svc.CompareVisitPhotos(context.Background(), beforeID, afterID)
	require.NoError(t, err)
	second, err := svc.CompareVisitPhotos(context.Background(), beforeID, afterID)
	require.NoError(t, err)

	// Unchanged data yields the same pair list, element for element.
	assert.Equal(t, first, second)
}

func TestCompareVisitPhotosRepositoryError(t *testing.T) {
	repo := &stubPhotoRepo{err: fmt.Errorf("connection reset")}

	svc := NewService(repo)
	_, err := svc.CompareVisitPhotos(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before-visit photos")
}
