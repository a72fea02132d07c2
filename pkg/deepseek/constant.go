package deepseek

import "time"

const (
	// DefaultModel is used when Config.Model is unset
	DefaultModel = "deepseek-chat"

	// DefaultBaseURL is the DeepSeek REST endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultTimeout bounds one generation round trip. DeepSeek
	// completions run noticeably slower than the other providers.
	DefaultTimeout = 60 * time.Second
)
