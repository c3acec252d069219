package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formmaker-api/internal/response"
	"formmaker-api/internal/service"
)

// AdminHandler serves the dashboard endpoints
type AdminHandler struct {
	formService  service.FormService
	statsService service.StatsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(formService service.FormService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		formService:  formService,
		statsService: statsService,
	}
}

// ListAllForms godoc
// @Summary      List all forms
// @Description  Returns every form including drafts, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.FormResponse} "All forms"
// @Failure      401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /admin/forms [get]
func (h *AdminHandler) ListAllForms(c *gin.Context) {
	forms, err := h.formService.ListAllForms(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, forms)
}

// GetStats godoc
// @Summary      Dashboard totals
// @Description  Returns totals for forms, published forms, responses and views
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse} "Totals"
// @Failure      401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
