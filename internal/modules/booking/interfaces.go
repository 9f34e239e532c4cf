package booking

import (
	"context"

	"jamtrips/internal/domain"
)

// BookingRepository defines the interface for booking storage operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}
