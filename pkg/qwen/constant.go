package qwen

import "time"

const (
	// DefaultModel is used when Config.Model is unset
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the DashScope OpenAI-compatible endpoint
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout bounds one generation round trip
	DefaultTimeout = 30 * time.Second
)
