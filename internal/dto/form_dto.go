package dto

import (
	"time"

	"github.com/google/uuid"

	"formmaker-api/internal/domain"
)

// FormResponse represents a stored form as returned by the API
type FormResponse struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Fields         []domain.FormField `json:"fields"`
	Style          domain.FormStyle   `json:"style"`
	Status         string             `json:"status"`
	IsPublished    bool               `json:"isPublished"`
	ResponseCount  int64              `json:"responses"`
	ViewCount      int64              `json:"views"`
	LastResponseAt *time.Time         `json:"lastResponse,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CreateFormRequest is the payload for creating a form. Validation happens
// in the service so the API can answer with the exact authoring messages
// (blank title, empty fields, unlabeled field).
type CreateFormRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Fields      []domain.FormField `json:"fields"`
	Style       *domain.FormStyle  `json:"style"`
	Status      string             `json:"status"`
	IsPublished bool               `json:"isPublished"`
}

// UpdateFormRequest is the payload for a full replace of a form's mutable
// fields; identity, timestamps and counters are preserved.
type UpdateFormRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Fields      []domain.FormField `json:"fields"`
	Style       *domain.FormStyle  `json:"style"`
	Status      string             `json:"status"`
	IsPublished bool               `json:"isPublished"`
}

// ToFormResponse converts a domain form to its API shape
func ToFormResponse(form *domain.Form) *FormResponse {
	return &FormResponse{
		ID:             form.ID,
		Title:          form.Title,
		Description:    form.Description,
		Fields:         form.Fields,
		Style:          form.Style,
		Status:         string(form.Status),
		IsPublished:    form.IsPublished,
		ResponseCount:  form.ResponseCount,
		ViewCount:      form.ViewCount,
		LastResponseAt: form.LastResponseAt,
		CreatedAt:      form.CreatedAt,
		UpdatedAt:      form.UpdatedAt,
	}
}

// StatsResponse aggregates dashboard totals across all forms
type StatsResponse struct {
	TotalForms     int64 `json:"totalForms"`
	PublishedForms int64 `json:"publishedForms"`
	TotalResponses int64 `json:"totalResponses"`
	TotalViews     int64 `json:"totalViews"`
}
