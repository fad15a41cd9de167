package photocompare

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

type PhotoCompareService interface {
	CompareVisitPhotos(ctx context.Context, beforeVisitID, afterVisitID uuid.UUID) ([]*model.PhotoPair, error)
}

type Service struct {
	photoRepo repository.PhotoRepository
}

func NewService(photoRepo repository.PhotoRepository) *Service {
	return &Service{photoRepo: photoRepo}
}

// CompareVisitPhotos reads both visits' full non-deleted photo sets and
// pairs them by (position, state). The repository's (sort_order,
// created_at) ordering decides which photo wins when a visit holds
// duplicates of a key. Pairs come back sorted by (position, state) so
// responses are stable.
func (s *Service) CompareVisitPhotos(ctx context.Context, beforeVisitID, afterVisitID uuid.UUID) ([]*model.PhotoPair, error) {
	before, err := s.photoRepo.ListByVisit(ctx, beforeVisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load before-visit photos: %w", err)
	}

	after, err := s.photoRepo.ListByVisit(ctx, afterVisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load after-visit photos: %w", err)
	}

	pairs := MatchPhotos(before, after)
	sortPairs(pairs)
	return pairs, nil
}

func sortPairs(pairs []*model.PhotoPair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Position != pairs[j].Position {
			return pairs[i].Position < pairs[j].Position
		}
		return stateString(pairs[i].State) < stateString(pairs[j].State)
	})
}

func stateString(state *string) string {
	if state == nil {
		return ""
	}
	return *state
}
