package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formmaker-api/internal/domain"
)

// FormTotals aggregates counters across all forms for the admin dashboard
type FormTotals struct {
	TotalForms     int64
	PublishedForms int64
	TotalResponses int64
	TotalViews     int64
}

// FormRepository defines the persistence contract for forms. Not-found
// conditions surface as gorm.ErrRecordNotFound; callers treat every call as
// able to fail with a store error.
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	FindPublished(ctx context.Context) ([]*domain.Form, error)
	FindAll(ctx context.Context) ([]*domain.Form, error)
	Update(ctx context.Context, form *domain.Form) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementResponseCount(ctx context.Context, id uuid.UUID, at time.Time) error
	SetResponseCount(ctx context.Context, id uuid.UUID, count int64) error
	CountTotals(ctx context.Context) (FormTotals, error)
}

// formRepositoryImpl is the GORM implementation of FormRepository
type formRepositoryImpl struct {
	db *gorm.DB
}

// NewFormRepository creates a new instance of FormRepository
func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepositoryImpl{db: db}
}

// Create inserts a new form
func (r *formRepositoryImpl) Create(ctx context.Context, form *domain.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// FindByID finds a form by id
func (r *formRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	var form domain.Form
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// FindPublished returns published forms, newest first
func (r *formRepositoryImpl) FindPublished(ctx context.Context) ([]*domain.Form, error) {
	var forms []*domain.Form
	if err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// FindAll returns every form regardless of status, newest first
func (r *formRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Form, error) {
	var forms []*domain.Form
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// Update replaces the mutable fields of a form. Counters, identity and
// creation time are never touched; response history survives re-saves.
func (r *formRepositoryImpl) Update(ctx context.Context, form *domain.Form) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Where("id = ?", form.ID).
		Select("Title", "Description", "Fields", "Style", "Status", "IsPublished").
		Updates(form)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a form and cascades deletion of its response records. The
// two deletes run in one transaction so a half-deleted form is never
// observable.
func (r *formRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("form_id = ?", id).
			Delete(&domain.ResponseRecord{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&domain.Form{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementViewCount bumps the view counter by one
func (r *formRepositoryImpl) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// IncrementResponseCount bumps the response counter atomically and stamps
// the last response time. The increment is a single SQL expression, so two
// concurrent submissions both land.
func (r *formRepositoryImpl) IncrementResponseCount(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"response_count":   gorm.Expr("response_count + ?", 1),
			"last_response_at": at,
		}).Error
}

// SetResponseCount overwrites the advisory counter, used by reconciliation
func (r *formRepositoryImpl) SetResponseCount(ctx context.Context, id uuid.UUID, count int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Where("id = ?", id).
		UpdateColumn("response_count", count).Error
}

// CountTotals aggregates dashboard counters over the forms table
func (r *formRepositoryImpl) CountTotals(ctx context.Context) (FormTotals, error) {
	var totals FormTotals

	if err := r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Count(&totals.TotalForms).Error; err != nil {
		return FormTotals{}, err
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Where("is_published = ?", true).
		Count(&totals.PublishedForms).Error; err != nil {
		return FormTotals{}, err
	}

	type sums struct {
		Responses int64
		Views     int64
	}
	var s sums
	if err := r.db.WithContext(ctx).
		Model(&domain.Form{}).
		Select("COALESCE(SUM(response_count), 0) AS responses, COALESCE(SUM(view_count), 0) AS views").
		Scan(&s).Error; err != nil {
		return FormTotals{}, err
	}
	totals.TotalResponses = s.Responses
	totals.TotalViews = s.Views

	return totals, nil
}
