package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formmaker-api/internal/dto"
	"formmaker-api/internal/response"
	"formmaker-api/internal/service"
)

// SubmissionHandler serves the public submission endpoint
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// SubmitForm godoc
// @Summary      Submit a form response
// @Description  Validates answers against the published form's schema and records them
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitFormRequest true "Submission payload"
// @Success      201 {object} response.SuccessResponse{data=dto.SubmitFormResponse} "Recorded submission"
// @Failure      400 {object} response.ErrorResponse "Missing or invalid payload, or validation failure"
// @Failure      404 {object} response.ErrorResponse "Form not found or not published"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms/submit [post]
func (h *SubmissionHandler) SubmitForm(c *gin.Context) {
	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Form ID and responses are required")
		return
	}
	if req.FormID == "" || req.Answers == nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Form ID and responses are required")
		return
	}

	formID, err := uuid.Parse(req.FormID)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
		return
	}

	meta := dto.SubmitMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	result, err := h.submissionService.SubmitForm(c.Request.Context(), formID, &req, meta)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}
