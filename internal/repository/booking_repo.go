package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamtrips/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

// ListAll returns all bookings newest first, each with its linked tour
// preloaded. Bookings with no tour, or whose tour was deleted, come back
// with a nil Tour rather than failing the whole fetch.
func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
