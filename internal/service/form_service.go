package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"formmaker-api/internal/domain"
	"formmaker-api/internal/dto"
	"formmaker-api/internal/metrics"
	"formmaker-api/internal/repository"
	"formmaker-api/internal/response"
)

const publishedFormCacheTTL = 5 * time.Minute

// FormService defines the interface for form authoring and retrieval
type FormService interface {
	CreateForm(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	GetForm(ctx context.Context, formID uuid.UUID) (*dto.FormResponse, error)
	ListPublishedForms(ctx context.Context) ([]*dto.FormResponse, error)
	ListAllForms(ctx context.Context) ([]*dto.FormResponse, error)
	UpdateForm(ctx context.Context, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error)
	DeleteForm(ctx context.Context, formID uuid.UUID) error
}

// formServiceImpl is the implementation of FormService
type formServiceImpl struct {
	formRepo repository.FormRepository
	cache    *redis.Client
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewFormService creates a new instance of FormService. The cache client is
// optional; a nil client disables the published-form cache.
func NewFormService(
	formRepo repository.FormRepository,
	cache *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) FormService {
	return &formServiceImpl{
		formRepo: formRepo,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// CreateForm validates and stores a new form
func (s *formServiceImpl) CreateForm(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	fields, err := normalizeFields(req.Fields)
	if err != nil {
		return nil, err
	}
	if err := validateAuthoring(req.Title, fields); err != nil {
		return nil, err
	}

	style := domain.DefaultStyle()
	if req.Style != nil {
		style = *req.Style
	}

	status := domain.FormStatusDraft
	if req.Status == string(domain.FormStatusPublished) || req.IsPublished {
		status = domain.FormStatusPublished
	}

	form := &domain.Form{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Fields:      fields,
		Style:       style,
		Status:      status,
		IsPublished: status == domain.FormStatusPublished,
	}

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create form", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementFormCreated()
	}
	s.logger.Info("form created",
		zap.String("form_id", form.ID.String()),
		zap.String("status", string(form.Status)))

	return dto.ToFormResponse(form), nil
}

// GetForm fetches a single form and bumps its view counter. Published forms
// hit a short-lived cache; the counter is still bumped on cache hits so the
// advisory count keeps moving.
func (s *formServiceImpl) GetForm(ctx context.Context, formID uuid.UUID) (*dto.FormResponse, error) {
	if cached := s.cacheGet(ctx, formID); cached != nil {
		s.bumpViewCount(ctx, formID)
		return cached, nil
	}

	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Form not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch form", err.Error())
	}

	s.bumpViewCount(ctx, formID)
	form.ViewCount++

	resp := dto.ToFormResponse(form)
	if form.IsPublished {
		s.cacheSet(ctx, resp)
	}
	return resp, nil
}

// ListPublishedForms returns published forms, newest first
func (s *formServiceImpl) ListPublishedForms(ctx context.Context) ([]*dto.FormResponse, error) {
	forms, err := s.formRepo.FindPublished(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list forms", err.Error())
	}
	return toFormResponses(forms), nil
}

// ListAllForms returns every form regardless of status, newest first
func (s *formServiceImpl) ListAllForms(ctx context.Context) ([]*dto.FormResponse, error) {
	forms, err := s.formRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list forms", err.Error())
	}
	return toFormResponses(forms), nil
}

// UpdateForm replaces the mutable fields of a form
func (s *formServiceImpl) UpdateForm(ctx context.Context, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error) {
	fields, err := normalizeFields(req.Fields)
	if err != nil {
		return nil, err
	}
	if err := validateAuthoring(req.Title, fields); err != nil {
		return nil, err
	}

	style := domain.DefaultStyle()
	if req.Style != nil {
		style = *req.Style
	}

	status := domain.FormStatusDraft
	if req.Status == string(domain.FormStatusPublished) || req.IsPublished {
		status = domain.FormStatusPublished
	}

	form := &domain.Form{
		BaseModel:   domain.BaseModel{ID: formID},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Fields:      fields,
		Style:       style,
		Status:      status,
		IsPublished: status == domain.FormStatusPublished,
	}

	if err := s.formRepo.Update(ctx, form); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Form not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update form", err.Error())
	}

	s.cacheInvalidate(ctx, formID)

	stored, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch form", err.Error())
	}
	return dto.ToFormResponse(stored), nil
}

// DeleteForm removes a form together with its responses
func (s *formServiceImpl) DeleteForm(ctx context.Context, formID uuid.UUID) error {
	if err := s.formRepo.Delete(ctx, formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Form not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete form", err.Error())
	}

	s.cacheInvalidate(ctx, formID)
	s.logger.Info("form deleted", zap.String("form_id", formID.String()))
	return nil
}

// normalizeFields assigns ids to new fields and checks structural validity
func normalizeFields(fields []domain.FormField) ([]domain.FormField, error) {
	out := make([]domain.FormField, len(fields))
	copy(out, fields)
	for i := range out {
		if strings.TrimSpace(out[i].ID) == "" {
			out[i].ID = uuid.NewString()
		}
	}

	if err := domain.CheckFields(out); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownFieldType):
			return nil, response.NewValidationError("Unknown field type", "")
		default:
			return nil, response.NewValidationError(err.Error(), "")
		}
	}
	return out, nil
}

// validateAuthoring enforces the authoring rules shared by create and update
func validateAuthoring(title string, fields []domain.FormField) error {
	if strings.TrimSpace(title) == "" {
		return response.NewValidationError("Form title is required", "")
	}
	if len(fields) == 0 {
		return response.NewValidationError("At least one field is required", "")
	}
	for _, f := range fields {
		if strings.TrimSpace(f.Label) == "" {
			return response.NewValidationError("All fields must have a label", "")
		}
	}
	return nil
}

func toFormResponses(forms []*domain.Form) []*dto.FormResponse {
	out := make([]*dto.FormResponse, 0, len(forms))
	for _, f := range forms {
		out = append(out, dto.ToFormResponse(f))
	}
	return out
}

func (s *formServiceImpl) bumpViewCount(ctx context.Context, formID uuid.UUID) {
	if err := s.formRepo.IncrementViewCount(ctx, formID); err != nil {
		s.logger.Warn("failed to increment view count",
			zap.String("form_id", formID.String()),
			zap.Error(err))
	}
}

func formCacheKey(formID uuid.UUID) string {
	return "form:published:" + formID.String()
}

func (s *formServiceImpl) cacheGet(ctx context.Context, formID uuid.UUID) *dto.FormResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, formCacheKey(formID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("form cache read failed", zap.Error(err))
		}
		return nil
	}
	var resp dto.FormResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		s.logger.Warn("form cache entry corrupt, dropping", zap.Error(err))
		s.cacheInvalidate(ctx, formID)
		return nil
	}
	return &resp
}

func (s *formServiceImpl) cacheSet(ctx context.Context, resp *dto.FormResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, formCacheKey(resp.ID), raw, publishedFormCacheTTL).Err(); err != nil {
		s.logger.Warn("form cache write failed", zap.Error(err))
	}
}

func (s *formServiceImpl) cacheInvalidate(ctx context.Context, formID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, formCacheKey(formID)).Err(); err != nil {
		s.logger.Warn("form cache invalidation failed", zap.Error(err))
	}
}
