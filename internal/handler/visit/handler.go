package visit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/visit"
)

type Handler struct {
	service visit.VisitService
}

func NewHandler(service visit.VisitService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients/:id/visits", h.CreateVisit)
	r.GET("/patients/:id/visits", h.ListVisits)

	visits := r.Group("/visits")
	{
		visits.GET("/:id", h.GetVisit)
		visits.PUT("/:id", h.UpdateVisit)
		visits.DELETE("/:id", h.DeleteVisit)

		visits.POST("/:id/treatments", h.AddTreatment)
		visits.GET("/:id/treatments", h.ListTreatments)
		visits.DELETE("/:id/treatments/:treatmentId", h.DeleteTreatment)

		visits.POST("/:id/photos", h.AddPhoto)
		visits.GET("/:id/photos", h.ListPhotos)
		visits.PUT("/:id/photos/:photoId", h.UpdatePhoto)
		visits.DELETE("/:id/photos/:photoId", h.DeletePhoto)
	}
}

func (h *Handler) CreateVisit(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	var req model.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	v := &model.Visit{
		PatientID:      patientID,
		VisitDate:      req.VisitDate,
		PractitionerID: req.PractitionerID,
		Notes:          req.Notes,
	}

	if err := h.service.CreateVisit(c.Request.Context(), v); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(v))
}

func (h *Handler) ListVisits(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	visits, err := h.service.ListVisits(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(visits))
}

func (h *Handler) GetVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	v, err := h.service.GetVisit(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(v))
}

func (h *Handler) UpdateVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	var req model.UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	v, err := h.service.GetVisit(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	if req.VisitDate != nil {
		v.VisitDate = *req.VisitDate
	}
	if req.PractitionerID != nil {
		v.PractitionerID = req.PractitionerID
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}

	if err := h.service.UpdateVisit(c.Request.Context(), v); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(v))
}

func (h *Handler) DeleteVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	if err := h.service.DeleteVisit(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "visit deleted"})
}

func (h *Handler) AddTreatment(c *gin.Context) {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	var req model.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	treatment := &model.Treatment{
		VisitID:      visitID,
		ProductID:    req.ProductID,
		LotNumber:    req.LotNumber,
		CategorySlug: req.CategorySlug,
		TotalUnits:   req.TotalUnits,
		TotalCost:    req.TotalCost,
	}
	for _, area := range req.Areas {
		treatment.Areas = append(treatment.Areas, &model.TreatmentArea{
			TreatedAreaID: area.TreatedAreaID,
			Units:         area.Units,
			Cost:          area.Cost,
		})
	}

	if err := h.service.AddTreatment(c.Request.Context(), treatment); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(treatment))
}

func (h *Handler) ListTreatments(c *gin.Context) {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	treatments, err := h.service.ListTreatments(c.Request.Context(), visitID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(treatments))
}

func (h *Handler) DeleteTreatment(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid treatment ID"))
		return
	}

	if err := h.service.DeleteTreatment(c.Request.Context(), treatmentID); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "treatment deleted"})
}

func (h *Handler) AddPhoto(c *gin.Context) {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	var req model.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	photo := &model.Photo{
		VisitID:       visitID,
		Position:      req.Position,
		State:         req.State,
		FilePath:      req.FilePath,
		ThumbnailPath: req.ThumbnailPath,
		Width:         req.Width,
		Height:        req.Height,
		SortOrder:     req.SortOrder,
	}

	if err := h.service.AddPhoto(c.Request.Context(), photo); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(photo))
}

func (h *Handler) ListPhotos(c *gin.Context) {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid visit ID"))
		return
	}

	photos, err := h.service.ListPhotos(c.Request.Context(), visitID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(photos))
}

func (h *Handler) UpdatePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid photo ID"))
		return
	}

	var req model.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	photo := &model.Photo{
		Base:     model.Base{ID: photoID},
		Position: req.Position,
		State:    req.State,
	}
	if req.SortOrder != nil {
		photo.SortOrder = *req.SortOrder
	}

	if err := h.service.UpdatePhoto(c.Request.Context(), photo); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(photo))
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid photo ID"))
		return
	}

	if err := h.service.DeletePhoto(c.Request.Context(), photoID); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "photo deleted"})
}
