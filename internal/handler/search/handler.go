package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/casesearch"
)

type Handler struct {
	service casesearch.CaseSearchService
}

func NewHandler(service casesearch.CaseSearchService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/search/cases", h.SearchCases)
}

// SearchCases accepts a criteria body where every field is optional. An
// empty body is valid and returns every non-deleted patient up to the cap.
func (h *Handler) SearchCases(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.SearchCases(c.Request.Context(), &criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}
