package photo

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/service/photocompare"
)

type Handler struct {
	service photocompare.PhotoCompareService
}

func NewHandler(service photocompare.PhotoCompareService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/visits/:id/compare/:afterId", h.CompareVisitPhotos)
}

// CompareVisitPhotos pairs the before visit's photos with the after
// visit's by (position, state). Two visits with no photos in common still
// produce one pair per key, with the missing side null.
func (h *Handler) CompareVisitPhotos(c *gin.Context) {
	beforeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid before visit ID"))
		return
	}

	afterID, err := uuid.Parse(c.Param("afterId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid after visit ID"))
		return
	}

	pairs, err := h.service.CompareVisitPhotos(c.Request.Context(), beforeID, afterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(pairs))
}
