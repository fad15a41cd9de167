package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/model"
)

type stubSearchService struct {
	criteria *model.SearchCriteria
	result   *model.CaseSearchResult
	err      error
}

func (s *stubSearchService) SearchCases(ctx context.Context, criteria *model.SearchCriteria) (*model.CaseSearchResult, error) {
	s.criteria = criteria
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func setupRouter(svc *stubSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func TestSearchCasesEmptyCriteria(t *testing.T) {
	svc := &stubSearchService{result: &model.CaseSearchResult{Cases: []*model.CaseSummary{}}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search/cases", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.criteria)
	assert.Nil(t, svc.criteria.Sex)
	assert.False(t, svc.criteria.HasPhotoConsent)

	var resp struct {
		Status string                 `json:"status"`
		Data   model.CaseSearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.False(t, resp.Data.Truncated)
	assert.Empty(t, resp.Data.Cases)
}

func TestSearchCasesForwardsCriteria(t *testing.T) {
	svc := &stubSearchService{result: &model.CaseSearchResult{Cases: []*model.CaseSummary{}}}
	r := setupRouter(svc)

	body := `{"sex":"female","age_min":30,"age_max":40,"has_photo_consent":true,"treatment_category_slugs":["botulinum-toxin"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search/cases", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.criteria)
	require.NotNil(t, svc.criteria.Sex)
	assert.Equal(t, "female", *svc.criteria.Sex)
	require.NotNil(t, svc.criteria.AgeMin)
	assert.Equal(t, 30, *svc.criteria.AgeMin)
	assert.True(t, svc.criteria.HasPhotoConsent)
	assert.Equal(t, []string{"botulinum-toxin"}, svc.criteria.TreatmentCategorySlugs)
}

func TestSearchCasesInvalidJSON(t *testing.T) {
	r := setupRouter(&stubSearchService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search/cases", bytes.NewBufferString(`{"sex":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCasesServiceError(t *testing.T) {
	r := setupRouter(&stubSearchService{err: fmt.Errorf("query failed")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search/cases", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
