package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formmaker-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockFormService is a mock implementation of FormService
type MockFormService struct {
	CreateFormFunc         func(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	GetFormFunc            func(ctx context.Context, formID uuid.UUID) (*dto.FormResponse, error)
	ListPublishedFormsFunc func(ctx context.Context) ([]*dto.FormResponse, error)
	ListAllFormsFunc       func(ctx context.Context) ([]*dto.FormResponse, error)
	UpdateFormFunc         func(ctx context.Context, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error)
	DeleteFormFunc         func(ctx context.Context, formID uuid.UUID) error
}

func (m *MockFormService) CreateForm(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	if m.CreateFormFunc != nil {
		return m.CreateFormFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockFormService) GetForm(ctx context.Context, formID uuid.UUID) (*dto.FormResponse, error) {
	if m.GetFormFunc != nil {
		return m.GetFormFunc(ctx, formID)
	}
	return nil, nil
}

func (m *MockFormService) ListPublishedForms(ctx context.Context) ([]*dto.FormResponse, error) {
	if m.ListPublishedFormsFunc != nil {
		return m.ListPublishedFormsFunc(ctx)
	}
	return nil, nil
}

func (m *MockFormService) ListAllForms(ctx context.Context) ([]*dto.FormResponse, error) {
	if m.ListAllFormsFunc != nil {
		return m.ListAllFormsFunc(ctx)
	}
	return nil, nil
}

func (m *MockFormService) UpdateForm(ctx context.Context, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error) {
	if m.UpdateFormFunc != nil {
		return m.UpdateFormFunc(ctx, formID, req)
	}
	return nil, nil
}

func (m *MockFormService) DeleteForm(ctx context.Context, formID uuid.UUID) error {
	if m.DeleteFormFunc != nil {
		return m.DeleteFormFunc(ctx, formID)
	}
	return nil
}

// MockSubmissionService is a mock implementation of SubmissionService
type MockSubmissionService struct {
	SubmitFormFunc    func(ctx context.Context, formID uuid.UUID, req *dto.SubmitFormRequest, meta dto.SubmitMeta) (*dto.SubmitFormResponse, error)
	ListResponsesFunc func(ctx context.Context, formID uuid.UUID) ([]*dto.ResponseRecordResponse, error)
}

func (m *MockSubmissionService) SubmitForm(ctx context.Context, formID uuid.UUID, req *dto.SubmitFormRequest, meta dto.SubmitMeta) (*dto.SubmitFormResponse, error) {
	if m.SubmitFormFunc != nil {
		return m.SubmitFormFunc(ctx, formID, req, meta)
	}
	return nil, nil
}

func (m *MockSubmissionService) ListResponses(ctx context.Context, formID uuid.UUID) ([]*dto.ResponseRecordResponse, error) {
	if m.ListResponsesFunc != nil {
		return m.ListResponsesFunc(ctx, formID)
	}
	return nil, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	GetStatsFunc func(ctx context.Context) (*dto.StatsResponse, error)
}

func (m *MockStatsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	ExportResponsesCSVFunc func(ctx context.Context, formID uuid.UUID) (string, []byte, error)
}

func (m *MockExportService) ExportResponsesCSV(ctx context.Context, formID uuid.UUID) (string, []byte, error) {
	if m.ExportResponsesCSVFunc != nil {
		return m.ExportResponsesCSVFunc(ctx, formID)
	}
	return "", nil, nil
}
