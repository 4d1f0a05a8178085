package qwen

import "time"

const (
	// DefaultModel is used when the provider config does not name one
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the OpenAI-compatible DashScope endpoint
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout bounds a single generation call
	DefaultTimeout = 30 * time.Second
)
