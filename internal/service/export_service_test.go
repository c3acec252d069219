package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formmaker-api/internal/domain"
	"formmaker-api/internal/response"
)

func TestExportService_ExportResponsesCSV(t *testing.T) {
	formID := uuid.New()
	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	formRepo := &MockFormRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return &domain.Form{
				BaseModel: domain.BaseModel{ID: formID},
				Title:     "Customer Survey",
				Fields: []domain.FormField{
					{ID: "name", Type: domain.FieldTypeText, Label: "Name"},
					{ID: "topics", Type: domain.FieldTypeCheckbox, Label: "Topics", Options: []string{"Go", "SQL"}},
					{ID: "rating", Type: domain.FieldTypeRating, Label: "Rating"},
					{ID: "addr", Type: domain.FieldTypeAddress, Label: "Address"},
				},
				IsPublished: true,
			}, nil
		},
	}
	respRepo := &MockResponseRepository{
		FindByFormIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.ResponseRecord, error) {
			return []*domain.ResponseRecord{
				{
					BaseModel: domain.BaseModel{ID: uuid.New()},
					FormID:    formID,
					Answers: map[string]interface{}{
						"name":   "Ada",
						"topics": []interface{}{"Go", "SQL"},
						"rating": float64(5),
						"addr":   map[string]interface{}{"street": "1 Main St", "city": "Springfield", "zip": "12345"},
					},
					SubmittedAt: submitted,
					IPAddress:   "10.0.0.1",
				},
				{
					BaseModel:   domain.BaseModel{ID: uuid.New()},
					FormID:      formID,
					Answers:     map[string]interface{}{"name": "Grace"},
					SubmittedAt: submitted.Add(-time.Hour),
				},
			}, nil
		},
	}
	svc := NewExportService(formRepo, respRepo)

	filename, data, err := svc.ExportResponsesCSV(context.Background(), formID)
	if err != nil {
		t.Fatalf("ExportResponsesCSV() error = %v", err)
	}
	if filename != "customer-survey-responses.csv" {
		t.Errorf("unexpected filename %q", filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := rows[0]
	want := []string{"Submitted At", "Name", "Topics", "Rating", "Address", "IP Address"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}

	first := rows[1]
	if first[0] != "2026-03-14 09:30:00" {
		t.Errorf("unexpected timestamp cell %q", first[0])
	}
	if first[1] != "Ada" || first[2] != "Go, SQL" || first[3] != "5" {
		t.Errorf("unexpected answer cells %v", first)
	}
	if first[4] != "1 Main St, Springfield, 12345" {
		t.Errorf("unexpected address cell %q", first[4])
	}
	if first[5] != "10.0.0.1" {
		t.Errorf("unexpected ip cell %q", first[5])
	}

	second := rows[2]
	if second[1] != "Grace" || second[2] != "" || second[3] != "" || second[4] != "" {
		t.Errorf("expected empty cells for missing answers, got %v", second)
	}
}

func TestExportService_ExportResponsesCSV_FormNotFound(t *testing.T) {
	formRepo := &MockFormRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewExportService(formRepo, &MockResponseRepository{})

	_, _, err := svc.ExportResponsesCSV(context.Background(), uuid.New())
	appErr := asAppError(t, err)
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", appErr.Code)
	}
}

func TestExportService_ExportResponsesCSV_NoResponses(t *testing.T) {
	formID := uuid.New()
	formRepo := &MockFormRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
			return &domain.Form{
				BaseModel: domain.BaseModel{ID: formID},
				Title:     "Empty",
				Fields:    []domain.FormField{{ID: "name", Type: domain.FieldTypeText, Label: "Name"}},
			}, nil
		},
	}
	svc := NewExportService(formRepo, &MockResponseRepository{})

	_, data, err := svc.ExportResponsesCSV(context.Background(), formID)
	if err != nil {
		t.Fatalf("ExportResponsesCSV() error = %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
