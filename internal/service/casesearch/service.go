package casesearch

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

type CaseSearchService interface {
	SearchCases(ctx context.Context, criteria *model.SearchCriteria) (*model.CaseSearchResult, error)
}

type Service struct {
	repo repository.CaseSearchRepository
}

func NewService(repo repository.CaseSearchRepository) *Service {
	return &Service{repo: repo}
}

// SearchCases runs the compiled criteria query. Criteria are not
// validated here: contradictory bounds simply compile to a query that
// matches nothing, and an empty result is the correct answer for "no
// match", never an error.
func (s *Service) SearchCases(ctx context.Context, criteria *model.SearchCriteria) (*model.CaseSearchResult, error) {
	result, err := s.repo.SearchCases(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}
	return result, nil
}
