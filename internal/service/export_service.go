package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formmaker-api/internal/repository"
	"formmaker-api/internal/response"
)

// ExportService renders a form's responses as a CSV download
type ExportService interface {
	ExportResponsesCSV(ctx context.Context, formID uuid.UUID) (filename string, data []byte, err error)
}

type exportServiceImpl struct {
	formRepo repository.FormRepository
	respRepo repository.ResponseRepository
}

// NewExportService creates a new instance of ExportService
func NewExportService(formRepo repository.FormRepository, respRepo repository.ResponseRepository) ExportService {
	return &exportServiceImpl{formRepo: formRepo, respRepo: respRepo}
}

// ExportResponsesCSV builds a CSV with one column per schema field, keyed by
// label, plus submission metadata. Answers for fields no longer in the
// schema are omitted; fields added after a submission render empty cells.
func (s *exportServiceImpl) ExportResponsesCSV(ctx context.Context, formID uuid.UUID) (string, []byte, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, response.NewNotFoundError("Form not found", "")
		}
		return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch form", err.Error())
	}

	records, err := s.respRepo.FindByFormID(ctx, formID)
	if err != nil {
		return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to list responses", err.Error())
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(form.Fields)+2)
	header = append(header, "Submitted At")
	for _, f := range form.Fields {
		header = append(header, f.Label)
	}
	header = append(header, "IP Address")
	if err := w.Write(header); err != nil {
		return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to write CSV", err.Error())
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, rec.SubmittedAt.Format("2006-01-02 15:04:05"))
		for _, f := range form.Fields {
			row = append(row, renderAnswer(rec.Answers[f.ID]))
		}
		row = append(row, rec.IPAddress)
		if err := w.Write(row); err != nil {
			return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to write CSV", err.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to write CSV", err.Error())
	}

	filename := exportFilename(form.Title)
	return filename, buf.Bytes(), nil
}

// renderAnswer flattens a stored answer value into a single CSV cell
func renderAnswer(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, renderAnswer(item))
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		// Address components in display order
		parts := make([]string, 0, 4)
		for _, key := range []string{"street", "city", "state", "zip"} {
			if s, ok := val[key].(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// exportFilename slugs the form title into a safe attachment name
func exportFilename(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "form"
	}
	return slug + "-responses.csv"
}
