package qdrant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgQdrant "bank-policy-assistant/pkg/qdrant"
	"bank-policy-assistant/pkg/voyage"
)

type mockEmbedder struct {
	embedFunc func(ctx context.Context, texts []string) ([][]float32, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return m.embedFunc(ctx, texts)
}

func (m *mockEmbedder) Rerank(ctx context.Context, query string, documents []string, topK int) ([]voyage.RerankResult, error) {
	return nil, errors.New("not implemented")
}

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

func TestRetriever_Retrieve(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/bank_policies/points/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"result": [
				{"id": "p1", "score": 0.91, "payload": {"text": "Medical allowance covers dependents."}},
				{"id": "p2", "score": 0.77, "payload": {"text": "Travel allowance includes fuel."}},
				{"id": "p3", "score": 0.55, "payload": {"chunk_index": 3}},
				{"id": "p4", "score": 0.50, "payload": {"text": ""}}
			]
		}`))
	}))
	defer ts.Close()

	embedder := &mockEmbedder{
		embedFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1, 0.2, 0.3}}, nil
		},
	}

	retriever := New(pkgQdrant.NewClient(ts.URL), embedder, "bank_policies", &mockLogger{})

	t.Run("Success skips malformed payloads", func(t *testing.T) {
		chunks, err := retriever.Retrieve(context.Background(), "medical policy", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chunks) != 2 {
			t.Fatalf("expected 2 well-formed chunks, got %d", len(chunks))
		}
		if chunks[0].Text != "Medical allowance covers dependents." || chunks[0].Score != 0.91 {
			t.Errorf("unexpected first chunk: %+v", chunks[0])
		}
	})

	t.Run("Embedding failure", func(t *testing.T) {
		failing := New(pkgQdrant.NewClient(ts.URL), &mockEmbedder{
			embedFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
				return nil, errors.New("voyage down")
			},
		}, "bank_policies", &mockLogger{})

		_, err := failing.Retrieve(context.Background(), "medical policy", 3)
		if err == nil {
			t.Fatalf("expected embedding error")
		}
	})

	t.Run("Search failure", func(t *testing.T) {
		missing := New(pkgQdrant.NewClient(ts.URL), embedder, "other_collection", &mockLogger{})
		_, err := missing.Retrieve(context.Background(), "medical policy", 3)
		if err == nil {
			t.Fatalf("expected search error")
		}
	})
}
