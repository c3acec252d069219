package service

import (
	"context"

	"formmaker-api/internal/dto"
	"formmaker-api/internal/repository"
	"formmaker-api/internal/response"
)

// StatsService aggregates dashboard totals
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	formRepo repository.FormRepository
	respRepo repository.ResponseRepository
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(formRepo repository.FormRepository, respRepo repository.ResponseRepository) StatsService {
	return &statsServiceImpl{formRepo: formRepo, respRepo: respRepo}
}

// GetStats returns totals across all forms. The response total is counted
// from the records table rather than the advisory per-form counters.
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	totals, err := s.formRepo.CountTotals(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate stats", err.Error())
	}

	responses, err := s.respRepo.CountAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count responses", err.Error())
	}

	return &dto.StatsResponse{
		TotalForms:     totals.TotalForms,
		PublishedForms: totals.PublishedForms,
		TotalResponses: responses,
		TotalViews:     totals.TotalViews,
	}, nil
}
