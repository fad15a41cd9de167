package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/portfolio"
)

type Handler struct {
	service portfolio.PortfolioService
}

func NewHandler(service portfolio.PortfolioService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	portfolios := r.Group("/portfolios")
	{
		portfolios.POST("", h.CreatePortfolio)
		portfolios.GET("", h.ListPortfolios)
		portfolios.GET("/:id", h.GetPortfolio)
		portfolios.DELETE("/:id", h.DeletePortfolio)

		portfolios.POST("/:id/items", h.AddItem)
		portfolios.GET("/:id/items", h.ListItems)
		portfolios.DELETE("/:id/items/:itemId", h.RemoveItem)
	}
}

func (h *Handler) CreatePortfolio(c *gin.Context) {
	var req model.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p := &model.Portfolio{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.service.CreatePortfolio(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) ListPortfolios(c *gin.Context) {
	portfolios, err := h.service.ListPortfolios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(portfolios))
}

func (h *Handler) GetPortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid portfolio ID"))
		return
	}

	p, err := h.service.GetPortfolio(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) DeletePortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid portfolio ID"))
		return
	}

	if err := h.service.DeletePortfolio(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "portfolio deleted"})
}

func (h *Handler) AddItem(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid portfolio ID"))
		return
	}

	var req model.CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	item := &model.PortfolioItem{
		PortfolioID:   portfolioID,
		PatientID:     req.PatientID,
		BeforeVisitID: req.BeforeVisitID,
		AfterVisitID:  req.AfterVisitID,
		PhotoPosition: req.PhotoPosition,
		PhotoState:    req.PhotoState,
		Caption:       req.Caption,
		SortOrder:     req.SortOrder,
	}

	if err := h.service.AddItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(item))
}

// ListItems returns each curated item with its resolved before/after
// photos, the patient's name, and the visit dates.
func (h *Handler) ListItems(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid portfolio ID"))
		return
	}

	items, err := h.service.ListItemsWithDetails(c.Request.Context(), portfolioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid portfolio item ID"))
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), itemID); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "portfolio item removed"})
}
