package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrEmptyCommand    = errors.New("command text is empty")
	ErrEmptySessionID  = errors.New("session id is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyFeedback   = errors.New("feedback text is empty")
)
