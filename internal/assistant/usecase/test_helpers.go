package usecase

import (
	"context"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
	"bank-policy-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repositories with overridable behavior per test
type mockRetriever struct {
	retrieveFunc func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
	return m.retrieveFunc(ctx, query, topK)
}

type mockReranker struct {
	rerankFunc func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error)
}

func (m *mockReranker) RerankedChunks(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
	return m.rerankFunc(ctx, query, topK)
}

type mockDirectory struct {
	getUserFunc       func(ctx context.Context, username string) (*model.UserContext, error)
	applyForLeaveFunc func(ctx context.Context, username string, days float64) (bool, error)
}

func (m *mockDirectory) GetUser(ctx context.Context, username string) (*model.UserContext, error) {
	if m.getUserFunc == nil {
		return nil, nil
	}
	return m.getUserFunc(ctx, username)
}

func (m *mockDirectory) ApplyForLeave(ctx context.Context, username string, days float64) (bool, error) {
	if m.applyForLeaveFunc == nil {
		return false, nil
	}
	return m.applyForLeaveFunc(ctx, username, days)
}

// fakeProvider implements llmprovider.Provider so tests can drive the
// Manager without HTTP servers.
type fakeProvider struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return p.generateFunc(ctx, req)
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-model" }

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
		ProviderName: "fake",
		ModelName:    "fake-model",
	}
}

func newTestManager(p *fakeProvider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})
}

func defaultTestConfig() assistant.Config {
	return assistant.Config{
		HRContact:      "hr@bankname.com",
		SearchK:        3,
		MinLeaveDays:   0.5,
		MaxLeaveDays:   30,
		RerankEnabled:  false,
		LLMTemperature: 0.3,
	}
}

func newTestUseCase(
	retriever *mockRetriever,
	reranker *mockReranker,
	directory *mockDirectory,
	provider *fakeProvider,
	cfg assistant.Config,
) *implUseCase {
	uc := New(&mockLogger{}, router.New(&mockLogger{}), retriever, nil, directory, newTestManager(provider), cfg)
	// Avoid a typed-nil reranker behind the interface.
	if reranker != nil {
		uc.reranker = reranker
	}
	return uc
}
