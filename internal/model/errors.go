package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Order errors
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateTransaction = errors.New("transaction id already used")
	ErrInvalidStatus        = errors.New("invalid order status")

	// ID errors
	ErrInvalidID = errors.New("invalid id format")
)
