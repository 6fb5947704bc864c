package models

import "errors"

// Error constants for store operations
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrInvalidInput    = errors.New("invalid input")
)
