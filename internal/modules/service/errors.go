package service

import "errors"

// Service layer errors for better error handling
var (
	// Constraint violations on write
	ErrSessionExists      = errors.New("session already exists")
	ErrInvalidPlatform    = errors.New("invalid platform")
	ErrInvalidStatus      = errors.New("invalid session status")
	ErrInvalidRole        = errors.New("invalid participant role")
	ErrInvalidEmailStatus = errors.New("invalid email status")
	ErrInvalidPath        = errors.New("invalid artifact path")

	// Caller errors on reads
	ErrInvalidPagination = errors.New("limit and offset must not be negative")

	// Structured-field encoding failures
	ErrEncoding = errors.New("value is not JSON-serializable")
)
