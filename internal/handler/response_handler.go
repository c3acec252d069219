package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formmaker-api/internal/response"
	"formmaker-api/internal/service"
)

// ResponseHandler serves the stored-response endpoints
type ResponseHandler struct {
	submissionService service.SubmissionService
	exportService     service.ExportService
}

// NewResponseHandler creates a new ResponseHandler
func NewResponseHandler(submissionService service.SubmissionService, exportService service.ExportService) *ResponseHandler {
	return &ResponseHandler{
		submissionService: submissionService,
		exportService:     exportService,
	}
}

// ListResponses godoc
// @Summary      List responses for a form
// @Description  Returns the stored responses for a form, newest first
// @Tags         responses
// @Produce      json
// @Param        formId query string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ResponseRecordResponse} "Responses"
// @Failure      400 {object} response.ErrorResponse "Missing or invalid form ID"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	formID, ok := formIDFromQuery(c)
	if !ok {
		return
	}

	records, err := h.submissionService.ListResponses(c.Request.Context(), formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, records)
}

// ExportResponses godoc
// @Summary      Export responses as CSV
// @Description  Streams the form's responses as a CSV attachment with one column per field
// @Tags         responses
// @Produce      text/csv
// @Param        formId query string true "Form ID (UUID)"
// @Success      200 {string} string "CSV file"
// @Failure      400 {object} response.ErrorResponse "Missing or invalid form ID"
// @Failure      404 {object} response.ErrorResponse "Form not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /responses/export [get]
func (h *ResponseHandler) ExportResponses(c *gin.Context) {
	formID, ok := formIDFromQuery(c)
	if !ok {
		return
	}

	filename, data, err := h.exportService.ExportResponsesCSV(c.Request.Context(), formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func formIDFromQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("formId")
	if raw == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "formId query parameter is required")
		return uuid.Nil, false
	}
	formID, err := uuid.Parse(raw)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
		return uuid.Nil, false
	}
	return formID, true
}
