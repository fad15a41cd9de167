package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/patient"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)

		patients.POST("/:id/consents", h.AddConsent)
		patients.GET("/:id/consents", h.ListConsents)
		patients.DELETE("/:id/consents/:consentId", h.RevokeConsent)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p := &model.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sex:       req.Sex,
		Birthday:  req.Birthday,
		Ethnicity: req.Ethnicity,
		Location:  req.Location,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}

	if err := h.service.CreatePatient(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	p, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	applyPatientUpdate(p, &req)

	if err := h.service.UpdatePatient(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "patient deleted"})
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) AddConsent(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	var req model.CreateConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	consent := &model.Consent{
		PatientID: patientID,
		VisitID:   req.VisitID,
		Type:      req.Type,
		SignedAt:  req.SignedAt,
	}

	if err := h.service.AddConsent(c.Request.Context(), consent); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(consent))
}

func (h *Handler) ListConsents(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	consents, err := h.service.ListConsents(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consents))
}

func (h *Handler) RevokeConsent(c *gin.Context) {
	consentID, err := uuid.Parse(c.Param("consentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid consent ID"))
		return
	}

	if err := h.service.RevokeConsent(c.Request.Context(), consentID); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "consent revoked"})
}

func applyPatientUpdate(p *model.Patient, req *model.UpdatePatientRequest) {
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Sex != nil {
		p.Sex = *req.Sex
	}
	if req.Birthday != nil {
		p.Birthday = *req.Birthday
	}
	if req.Ethnicity != nil {
		p.Ethnicity = *req.Ethnicity
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
}
