package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
// REST-слой маппит их на HTTP-статусы, ничего не зная о деталях хранилища.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("caller is not the owner")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidGuests    = errors.New("guests must be a positive number")
	ErrCapacityExceeded = errors.New("guests exceed property capacity")
	ErrTokenInvalid     = errors.New("token is invalid or expired")
)
