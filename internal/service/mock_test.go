package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"formmaker-api/internal/domain"
	"formmaker-api/internal/repository"
)

// MockFormRepository is a mock implementation of FormRepository
type MockFormRepository struct {
	CreateFunc                 func(ctx context.Context, form *domain.Form) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	FindPublishedFunc          func(ctx context.Context) ([]*domain.Form, error)
	FindAllFunc                func(ctx context.Context) ([]*domain.Form, error)
	UpdateFunc                 func(ctx context.Context, form *domain.Form) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	IncrementViewCountFunc     func(ctx context.Context, id uuid.UUID) error
	IncrementResponseCountFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	SetResponseCountFunc       func(ctx context.Context, id uuid.UUID, count int64) error
	CountTotalsFunc            func(ctx context.Context) (repository.FormTotals, error)
}

func (m *MockFormRepository) Create(ctx context.Context, form *domain.Form) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, form)
	}
	return nil
}

func (m *MockFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFormRepository) FindPublished(ctx context.Context) ([]*domain.Form, error) {
	if m.FindPublishedFunc != nil {
		return m.FindPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *MockFormRepository) FindAll(ctx context.Context) ([]*domain.Form, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockFormRepository) Update(ctx context.Context, form *domain.Form) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, form)
	}
	return nil
}

func (m *MockFormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFormRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return nil
}

func (m *MockFormRepository) IncrementResponseCount(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.IncrementResponseCountFunc != nil {
		return m.IncrementResponseCountFunc(ctx, id, at)
	}
	return nil
}

func (m *MockFormRepository) SetResponseCount(ctx context.Context, id uuid.UUID, count int64) error {
	if m.SetResponseCountFunc != nil {
		return m.SetResponseCountFunc(ctx, id, count)
	}
	return nil
}

func (m *MockFormRepository) CountTotals(ctx context.Context) (repository.FormTotals, error) {
	if m.CountTotalsFunc != nil {
		return m.CountTotalsFunc(ctx)
	}
	return repository.FormTotals{}, nil
}

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	CreateFunc         func(ctx context.Context, record *domain.ResponseRecord) error
	FindByFormIDFunc   func(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRecord, error)
	CountByFormIDFunc  func(ctx context.Context, formID uuid.UUID) (int64, error)
	CountAllFunc       func(ctx context.Context) (int64, error)
	DeleteByFormIDFunc func(ctx context.Context, formID uuid.UUID) error
}

func (m *MockResponseRepository) Create(ctx context.Context, record *domain.ResponseRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockResponseRepository) FindByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRecord, error) {
	if m.FindByFormIDFunc != nil {
		return m.FindByFormIDFunc(ctx, formID)
	}
	return nil, nil
}

func (m *MockResponseRepository) CountByFormID(ctx context.Context, formID uuid.UUID) (int64, error) {
	if m.CountByFormIDFunc != nil {
		return m.CountByFormIDFunc(ctx, formID)
	}
	return 0, nil
}

func (m *MockResponseRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *MockResponseRepository) DeleteByFormID(ctx context.Context, formID uuid.UUID) error {
	if m.DeleteByFormIDFunc != nil {
		return m.DeleteByFormIDFunc(ctx, formID)
	}
	return nil
}
