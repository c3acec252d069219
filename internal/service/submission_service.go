package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"formmaker-api/internal/domain"
	"formmaker-api/internal/dto"
	"formmaker-api/internal/metrics"
	"formmaker-api/internal/repository"
	"formmaker-api/internal/response"
)

// SubmissionService defines the interface for accepting and reading
// submitted responses
type SubmissionService interface {
	SubmitForm(ctx context.Context, formID uuid.UUID, req *dto.SubmitFormRequest, meta dto.SubmitMeta) (*dto.SubmitFormResponse, error)
	ListResponses(ctx context.Context, formID uuid.UUID) ([]*dto.ResponseRecordResponse, error)
}

// submissionServiceImpl is the implementation of SubmissionService
type submissionServiceImpl struct {
	formRepo repository.FormRepository
	respRepo repository.ResponseRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewSubmissionService creates a new instance of SubmissionService
func NewSubmissionService(
	formRepo repository.FormRepository,
	respRepo repository.ResponseRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		formRepo: formRepo,
		respRepo: respRepo,
		metrics:  m,
		logger:   logger,
	}
}

// SubmitForm validates a submission against the form's current schema and
// records it. The record insert is the commit point; the form's response
// counter is bumped afterwards on a best-effort basis and reconciled by a
// background job if the bump is lost.
func (s *submissionServiceImpl) SubmitForm(ctx context.Context, formID uuid.UUID, req *dto.SubmitFormRequest, meta dto.SubmitMeta) (*dto.SubmitFormResponse, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotPublishedError("Form not found or not published")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch form", err.Error())
	}
	if !form.IsPublished {
		return nil, response.NewNotPublishedError("Form not found or not published")
	}

	if fieldErrors := domain.Validate(*form, req.Answers); len(fieldErrors) > 0 {
		return nil, response.NewFieldValidationError("Validation failed", fieldErrors)
	}

	submittedAt := time.Now().UTC()
	if req.SubmittedAt != nil {
		submittedAt = req.SubmittedAt.UTC()
	}

	record := &domain.ResponseRecord{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		FormID:      form.ID,
		Answers:     req.Answers,
		SubmittedAt: submittedAt,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}
	if err := s.respRepo.Create(ctx, record); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save response", err.Error())
	}

	// The submission is durable at this point. A failed counter bump only
	// leaves the advisory count behind until the next reconciliation.
	if err := s.formRepo.IncrementResponseCount(ctx, form.ID, submittedAt); err != nil {
		s.logger.Warn("failed to increment response count",
			zap.String("form_id", form.ID.String()),
			zap.Error(err))
	}

	if s.metrics != nil {
		s.metrics.IncrementSubmissionCreated()
	}
	s.logger.Info("response recorded",
		zap.String("form_id", form.ID.String()),
		zap.String("response_id", record.ID.String()))

	return &dto.SubmitFormResponse{ResponseID: record.ID}, nil
}

// ListResponses returns the stored responses for a form, newest first
func (s *submissionServiceImpl) ListResponses(ctx context.Context, formID uuid.UUID) ([]*dto.ResponseRecordResponse, error) {
	records, err := s.respRepo.FindByFormID(ctx, formID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list responses", err.Error())
	}

	out := make([]*dto.ResponseRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.ToResponseRecordResponse(rec))
	}
	return out, nil
}
