package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamtrips/internal/domain"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// ListPublished returns published tours ordered for display.
func (r *TourRepository) ListPublished(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("sort_order ASC").
		Find(&tours).Error
	return tours, err
}

// GetPublishedByID returns (nil, nil) when the tour is missing or
// unpublished. Absence is a valid result here, not a failure.
func (r *TourRepository) GetPublishedByID(ctx context.Context, id string) (*domain.Tour, error) {
	var tour domain.Tour
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", id, true).
		First(&tour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

// ListAll returns every tour, published or not, for the admin panel.
func (r *TourRepository) ListAll(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&tours).Error
	return tours, err
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	var tour domain.Tour
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tour).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(tour).Error
}

// Update overwrites the full row. Save writes every field, which matches
// the whole-record replace semantics of the admin edit form.
func (r *TourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *TourRepository) SetPublished(ctx context.Context, id string, value bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Tour{}).
		Where("id = ?", id).
		Update("is_published", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row permanently.
func (r *TourRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Tour{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
