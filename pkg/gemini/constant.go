package gemini

import "time"

const (
	// DefaultModel is used when Config.Model is unset
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the Gemini REST endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one generation round trip
	DefaultTimeout = 30 * time.Second
)
