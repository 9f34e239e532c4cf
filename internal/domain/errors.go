package domain

import "errors"

var (
	ErrInvalidTourType      = errors.New("invalid tour type")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)
