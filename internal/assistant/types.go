package assistant

import (
	"time"

	"bank-policy-assistant/internal/router"
)

// Config carries the assistant tuning knobs loaded from configuration.
type Config struct {
	HRContact      string  // Shown in fallback replies when no answer is found
	SearchK        int     // Number of chunks fed to the LLM
	MinLeaveDays   float64 // Inclusive lower bound for a leave application
	MaxLeaveDays   float64 // Inclusive upper bound for a leave application
	RerankEnabled  bool
	LLMTemperature float64

	DirectoryTimeout time.Duration
	RetrievalTimeout time.Duration
	LLMTimeout       time.Duration
}

// Output is the result of handling one query.
type Output struct {
	Reply  string
	Intent router.Intent
}
