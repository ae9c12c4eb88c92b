package utils

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTripNotFound  = errors.New("trip not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
