package gemini

import "context"

// IGemini is the Gemini API client surface. Gemini is the primary
// provider for policy answer synthesis and summarization.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a Gemini client from the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
