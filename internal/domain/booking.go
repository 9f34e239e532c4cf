package domain

import "time"

type BookingStatus string

const (
	BookingNew       BookingStatus = "new"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingNew, BookingConfirmed, BookingCancelled, BookingCompleted}
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingNew, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", ErrInvalidBookingStatus
}

type Booking struct {
	ID string `json:"id" gorm:"primaryKey;size:36"`

	// Nullable: general inquiries carry no tour. Deleting the tour keeps
	// the booking and nulls the reference.
	TourID *string `json:"tour_id" gorm:"size:36"`

	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	CustomerEmail *string `json:"customer_email"`
	PreferredDate *string `json:"preferred_date"`
	GuestsCount   int     `json:"guests_count"`
	Message       *string `json:"message" gorm:"type:text"`

	Status BookingStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tour *Tour `json:"tour,omitempty" gorm:"foreignKey:TourID;constraint:OnDelete:SET NULL"`
}
