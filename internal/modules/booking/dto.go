package booking

import (
	"time"

	"jamtrips/internal/domain"
)

// SubmitBookingRequest is the public booking form. Only name and phone
// are required; everything else is optional and normalized to NULL when
// left empty.
type SubmitBookingRequest struct {
	TourID        string `json:"tour_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	PreferredDate string `json:"preferred_date"`
	GuestsCount   int    `json:"guests_count"`
	Message       string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingDetails is one admin-table row: the booking joined with its
// linked tour's primary-language title. Dangling or absent tour refs
// leave the title empty.
type BookingDetails struct {
	ID            string               `json:"id"`
	TourID        *string              `json:"tour_id"`
	TourTitle     string               `json:"tour_title,omitempty"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	CustomerEmail *string              `json:"customer_email"`
	PreferredDate *string              `json:"preferred_date"`
	GuestsCount   int                  `json:"guests_count"`
	Message       *string              `json:"message"`
	Status        domain.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}
