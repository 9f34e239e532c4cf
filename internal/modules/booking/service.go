package booking

import (
	"context"
	"strings"

	"jamtrips/internal/domain"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Submit validates the form and inserts the lead. Required-field checks
// run before any store call; an invalid form never reaches the
// repository. Every submission creates a fresh row; there is no
// idempotency key, so a resubmitted form is a new booking.
func (s *Service) Submit(ctx context.Context, req SubmitBookingRequest) (*domain.Booking, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, ErrNameRequired
	}
	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	guests := req.GuestsCount
	if guests <= 0 {
		guests = 1
	}

	b := &domain.Booking{
		TourID:        optional(req.TourID),
		CustomerName:  name,
		CustomerPhone: phone,
		CustomerEmail: optional(req.CustomerEmail),
		PreferredDate: optional(req.PreferredDate),
		GuestsCount:   guests,
		Message:       optional(req.Message),
		Status:        domain.BookingNew,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ListAll returns the admin view, newest first. Rows whose tour is gone
// keep an empty title instead of failing the fetch.
func (s *Service) ListAll(ctx context.Context) ([]BookingDetails, error) {
	rows, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, b := range rows {
		d := BookingDetails{
			ID:            b.ID,
			TourID:        b.TourID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			CustomerEmail: b.CustomerEmail,
			PreferredDate: b.PreferredDate,
			GuestsCount:   b.GuestsCount,
			Message:       b.Message,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
		}
		if b.Tour != nil {
			d.TourTitle = b.Tour.TitleRU
		}
		out = append(out, d)
	}
	return out, nil
}

// UpdateStatus moves a booking to any of the four statuses. There is no
// transition graph; setting the current status again is a valid no-op.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return err
	}
	return s.bookings.UpdateStatus(ctx, id, parsed)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
