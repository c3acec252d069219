package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formmaker-api/internal/domain"
)

// ResponseRepository defines the persistence contract for submitted responses
type ResponseRepository interface {
	Create(ctx context.Context, record *domain.ResponseRecord) error
	FindByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRecord, error)
	CountByFormID(ctx context.Context, formID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	DeleteByFormID(ctx context.Context, formID uuid.UUID) error
}

// responseRepositoryImpl is the GORM implementation of ResponseRepository
type responseRepositoryImpl struct {
	db *gorm.DB
}

// NewResponseRepository creates a new instance of ResponseRepository
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepositoryImpl{db: db}
}

// Create inserts a submitted response record
func (r *responseRepositoryImpl) Create(ctx context.Context, record *domain.ResponseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByFormID returns all responses for a form, newest submission first
func (r *responseRepositoryImpl) FindByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRecord, error) {
	var records []*domain.ResponseRecord
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("submitted_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountByFormID counts the stored responses for a form
func (r *responseRepositoryImpl) CountByFormID(ctx context.Context, formID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ResponseRecord{}).
		Where("form_id = ?", formID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll counts every stored response across all forms
func (r *responseRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ResponseRecord{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByFormID removes all responses belonging to a form
func (r *responseRepositoryImpl) DeleteByFormID(ctx context.Context, formID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Delete(&domain.ResponseRecord{}).Error
}
