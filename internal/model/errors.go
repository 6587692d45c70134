package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Session errors
	ErrSessionNotFound = errors.New("no active session")

	// Progression errors
	ErrProgressionNotFound = errors.New("progression record not found")
	ErrProgressionExists   = errors.New("progression record already initialized")
	ErrUpdateConflict      = errors.New("concurrent update conflict")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
