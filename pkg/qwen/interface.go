package qwen

import "context"

// IQwen is the Qwen API client surface. The assistant uses Qwen as the
// fallback provider behind Gemini in the llmprovider chain.
// Implementations are safe for concurrent use.
type IQwen interface {
	// GenerateContent sends a generation request to the Qwen API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a Qwen client from the given configuration
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
