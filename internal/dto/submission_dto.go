package dto

import (
	"time"

	"github.com/google/uuid"

	"formmaker-api/internal/domain"
)

// SubmitFormRequest is the public submission payload. The answers key is
// "responses" on the wire, mapping field ids to answer values.
type SubmitFormRequest struct {
	FormID      string         `json:"formId"`
	Answers     map[string]any `json:"responses"`
	SubmittedAt *time.Time     `json:"submittedAt"`
}

// SubmitMeta carries request diagnostics attached to a response record
type SubmitMeta struct {
	IPAddress string
	UserAgent string
}

// SubmitFormResponse acknowledges a recorded submission
type SubmitFormResponse struct {
	ResponseID uuid.UUID `json:"responseId"`
}

// ResponseRecordResponse represents one stored response record
type ResponseRecordResponse struct {
	ID          uuid.UUID      `json:"id"`
	FormID      uuid.UUID      `json:"formId"`
	Answers     map[string]any `json:"responses"`
	SubmittedAt time.Time      `json:"submittedAt"`
	IPAddress   string         `json:"ipAddress"`
	UserAgent   string         `json:"userAgent"`
}

// ToResponseRecordResponse converts a domain record to its API shape
func ToResponseRecordResponse(record *domain.ResponseRecord) *ResponseRecordResponse {
	return &ResponseRecordResponse{
		ID:          record.ID,
		FormID:      record.FormID,
		Answers:     record.Answers,
		SubmittedAt: record.SubmittedAt,
		IPAddress:   record.IPAddress,
		UserAgent:   record.UserAgent,
	}
}
