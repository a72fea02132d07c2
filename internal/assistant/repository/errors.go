package repository

import "errors"

// Repository-level errors shared by all backends.
var (
	ErrSessionNotFound = errors.New("session not found")
)
