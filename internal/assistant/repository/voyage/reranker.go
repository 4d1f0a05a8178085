package voyage

import (
	"context"
	"fmt"

	"bank-policy-assistant/internal/assistant/repository"
	"bank-policy-assistant/internal/model"
	pkgLog "bank-policy-assistant/pkg/log"
	pkgVoyage "bank-policy-assistant/pkg/voyage"
)

// CandidateWindow is how many chunks are pulled from the vector store
// before reranking cuts them down to topK.
const CandidateWindow = 20

type implReranker struct {
	retriever repository.Retriever
	reranker  pkgVoyage.IVoyage
	l         pkgLog.Logger
}

// New creates a reranker that widens retrieval and reorders by
// cross-encoder relevance.
func New(retriever repository.Retriever, reranker pkgVoyage.IVoyage, l pkgLog.Logger) repository.Reranker {
	return &implReranker{
		retriever: retriever,
		reranker:  reranker,
		l:         l,
	}
}

// RerankedChunks retrieves a wide candidate set, reranks it against the
// query, and returns the topK chunks with relevance scores.
func (r *implReranker) RerankedChunks(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
	candidates, err := r.retriever.Retrieve(ctx, query, CandidateWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	documents := make([]string, len(candidates))
	for i, c := range candidates {
		documents[i] = c.Text
	}

	results, err := r.reranker.Rerank(ctx, query, documents, topK)
	if err != nil {
		r.l.Errorf(ctx, "voyage reranker: rerank failed: %v", err)
		return nil, fmt.Errorf("failed to rerank: %w", err)
	}

	chunks := make([]model.ContextChunk, 0, len(results))
	for _, res := range results {
		if res.Index < 0 || res.Index >= len(candidates) {
			r.l.Warnf(ctx, "voyage reranker: out of range index %d, skipping", res.Index)
			continue
		}
		chunks = append(chunks, model.ContextChunk{
			Text:  candidates[res.Index].Text,
			Score: res.RelevanceScore,
		})
	}

	return chunks, nil
}
