package voyage

import (
	"context"
)

// IVoyage defines the interface for Voyage AI embeddings and reranking.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Rerank(ctx context.Context, query string, documents []string, topK int) ([]RerankResult, error)
}
