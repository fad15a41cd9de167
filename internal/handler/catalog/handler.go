package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/catalog"
)

type Handler struct {
	service catalog.CatalogService
}

func NewHandler(service catalog.CatalogService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.ListProducts)

	r.POST("/treated-areas", h.CreateTreatedArea)
	r.GET("/treated-areas", h.ListTreatedAreas)

	r.POST("/treatment-categories", h.CreateTreatmentCategory)
	r.GET("/treatment-categories", h.ListTreatmentCategories)
}

// activeOnly defaults to true: pickers want active rows, settings screens
// pass ?all=true.
func activeOnly(c *gin.Context) bool {
	return c.Query("all") != "true"
}

func isActive(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	product := &model.Product{
		Name:     req.Name,
		Vendor:   req.Vendor,
		IsActive: isActive(req.IsActive),
	}

	if err := h.service.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(product))
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(products))
}

func (h *Handler) CreateTreatedArea(c *gin.Context) {
	var req model.CreateTreatedAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	area := &model.TreatedArea{
		Name:     req.Name,
		IsActive: isActive(req.IsActive),
	}

	if err := h.service.CreateTreatedArea(c.Request.Context(), area); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(area))
}

func (h *Handler) ListTreatedAreas(c *gin.Context) {
	areas, err := h.service.ListTreatedAreas(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(areas))
}

func (h *Handler) CreateTreatmentCategory(c *gin.Context) {
	var req model.CreateTreatmentCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	category := &model.TreatmentCategory{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: isActive(req.IsActive),
	}

	if err := h.service.CreateTreatmentCategory(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(category))
}

func (h *Handler) ListTreatmentCategories(c *gin.Context) {
	categories, err := h.service.ListTreatmentCategories(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(categories))
}
