package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
	"bank-policy-assistant/pkg/llmprovider"
)

func policyChunks() []model.ContextChunk {
	return []model.ContextChunk{
		{Text: "Medical allowance covers OPD for employees and dependents.", Score: 0.9},
		{Text: "Travel allowance includes fuel reimbursement for grade G5 and above.", Score: 0.8},
	}
}

func TestHandleQuery_PolicyQuery(t *testing.T) {
	user := model.UserContext{Username: "alice", Grade: "G5"}

	t.Run("Success Flow", func(t *testing.T) {
		var gotPrompt string
		var gotTopK int

		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				gotTopK = topK
				return policyChunks(), nil
			},
		}
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				gotPrompt = req.Messages[0].Parts[0].Text
				return textResponse("OPD is covered for dependents."), nil
			},
		}

		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "what is the medical policy?", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != router.IntentPolicyQuery {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if out.Reply != "OPD is covered for dependents." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
		if gotTopK != 3 {
			t.Errorf("expected SearchK=3, got %d", gotTopK)
		}
		if !strings.Contains(gotPrompt, "Medical allowance covers OPD") ||
			!strings.Contains(gotPrompt, "Travel allowance includes fuel") {
			t.Errorf("expected both chunks in prompt")
		}
		if !strings.Contains(gotPrompt, "User grade: G5") {
			t.Errorf("expected user grade in prompt")
		}
		if !strings.Contains(gotPrompt, "what is the medical policy?") {
			t.Errorf("expected question in prompt")
		}
	})

	t.Run("Reranker used when enabled", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				t.Error("plain retriever should not be called when reranking is enabled")
				return nil, nil
			},
		}
		reranker := &mockReranker{
			rerankFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				if topK != RerankTopK {
					t.Errorf("expected rerank topK %d, got %d", RerankTopK, topK)
				}
				return policyChunks(), nil
			},
		}
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse("Answer."), nil
			},
		}

		cfg := defaultTestConfig()
		cfg.RerankEnabled = true
		uc := newTestUseCase(retriever, reranker, &mockDirectory{}, provider, cfg)

		out, err := uc.HandleQuery(context.Background(), "fuel allowance?", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "Answer." {
			t.Errorf("unexpected reply: %q", out.Reply)
		}
	})

	t.Run("Empty answer retried once then HR fallback", func(t *testing.T) {
		retrievals := 0
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				retrievals++
				return policyChunks(), nil
			},
		}
		calls := 0
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				calls++
				return textResponse("   "), nil
			},
		}

		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "what is the exit policy?", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("expected 2 LLM calls, got %d", calls)
		}
		if retrievals != 2 {
			t.Errorf("expected retrieval re-run on retry, got %d", retrievals)
		}
		if !strings.Contains(out.Reply, "hr@bankname.com") {
			t.Errorf("expected HR fallback with contact, got %q", out.Reply)
		}
	})

	t.Run("Empty answer recovered on retry", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				return policyChunks(), nil
			},
		}
		calls := 0
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				calls++
				if calls == 1 {
					return textResponse(""), nil
				}
				return textResponse("Second try answer."), nil
			},
		}

		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "what is the exit policy?", user)
		if out.Reply != "Second try answer." {
			t.Errorf("expected retry answer, got %q", out.Reply)
		}
	})

	t.Run("Verbose answer summarized", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				return policyChunks(), nil
			},
		}

		verbose := strings.Repeat("The policy covers many cases. ", 30) // > 600 chars
		calls := 0
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				calls++
				if calls == 1 {
					if req.MaxTokens != MaxAnswerTokens {
						t.Errorf("expected answer budget %d, got %d", MaxAnswerTokens, req.MaxTokens)
					}
					return textResponse(verbose), nil
				}
				if !strings.HasPrefix(req.Messages[0].Parts[0].Text, "Summarize the following text") {
					t.Errorf("expected summarization prompt")
				}
				if req.Temperature != SummaryTemperature || req.MaxTokens != SummaryMaxTokens {
					t.Errorf("unexpected summary call budget: temp=%v tokens=%d", req.Temperature, req.MaxTokens)
				}
				return textResponse("Short summary."), nil
			},
		}

		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "what is the loan policy?", user)
		if out.Reply != "Short summary." {
			t.Errorf("expected summarized reply, got %q", out.Reply)
		}
	})

	t.Run("Summarization failure keeps original answer", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				return policyChunks(), nil
			},
		}

		verbose := strings.Repeat("Clause. ", 100)
		calls := 0
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				calls++
				if calls == 1 {
					return textResponse(verbose), nil
				}
				return nil, errors.New("summary model down")
			},
		}

		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "what is the loan policy?", user)
		if out.Reply != strings.TrimSpace(verbose) {
			t.Errorf("expected original verbose answer, got %q", out.Reply)
		}
	})

	t.Run("Retrieval failure", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				return nil, errors.New("qdrant down")
			},
		}
		uc := newTestUseCase(retriever, nil, &mockDirectory{}, &fakeProvider{}, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "what is the loan policy?", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Reply, "error processing your question") || !strings.Contains(out.Reply, "qdrant down") {
			t.Errorf("expected provider error reply, got %q", out.Reply)
		}
	})

	t.Run("Provider failure", func(t *testing.T) {
		retriever := &mockRetriever{
			retrieveFunc: func(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
				return policyChunks(), nil
			},
		}
		provider := &fakeProvider{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("all providers failed")
			},
		}
		uc := newTestUseCase(retriever, nil, &mockDirectory{}, provider, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "what is the loan policy?", user)
		if !strings.Contains(out.Reply, "⚠️ Sorry, there was an error processing your question") {
			t.Errorf("expected provider error reply, got %q", out.Reply)
		}
	})
}
