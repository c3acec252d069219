package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formmaker-api/internal/dto"
	"formmaker-api/internal/response"
	"formmaker-api/internal/service"
)

// FormHandler serves the public form endpoints
type FormHandler struct {
	formService service.FormService
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// ListForms godoc
// @Summary      List published forms
// @Description  Returns all published forms, newest first
// @Tags         forms
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.FormResponse} "Published forms"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.formService.ListPublishedForms(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, forms)
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Creates a new form from the builder payload
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFormRequest true "Form definition"
// @Success      201 {object} response.SuccessResponse{data=dto.FormResponse} "Created form"
// @Failure      400 {object} response.ErrorResponse "Invalid form definition"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	form, err := h.formService.CreateForm(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, form)
}

// GetForm godoc
// @Summary      Get a form
// @Description  Fetches a single form by id and counts the view
// @Tags         forms
// @Produce      json
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FormResponse} "Form"
// @Failure      400 {object} response.ErrorResponse "Invalid form ID"
// @Failure      404 {object} response.ErrorResponse "Form not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms/{formId} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("formId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
		return
	}

	form, err := h.formService.GetForm(c.Request.Context(), formID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Replaces the form's title, description, fields, style and status
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.UpdateFormRequest true "Form definition"
// @Success      200 {object} response.SuccessResponse{data=dto.FormResponse} "Updated form"
// @Failure      400 {object} response.ErrorResponse "Invalid form definition"
// @Failure      404 {object} response.ErrorResponse "Form not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms/{formId} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("formId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
		return
	}

	var req dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	form, err := h.formService.UpdateForm(c.Request.Context(), formID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Deletes a form together with all of its responses
// @Tags         forms
// @Produce      json
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid form ID"
// @Failure      404 {object} response.ErrorResponse "Form not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /forms/{formId} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("formId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form ID")
		return
	}

	if err := h.formService.DeleteForm(c.Request.Context(), formID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
