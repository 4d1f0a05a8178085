package usecase

import (
	"context"
	"strings"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
)

// retrieveContext pulls the policy chunks for the query and joins them
// into the prompt context. Reranking widens the candidate set first
// when enabled.
func (uc *implUseCase) retrieveContext(ctx context.Context, query string) (string, error) {
	retrievalCtx, cancel := uc.withTimeout(ctx, uc.cfg.RetrievalTimeout)
	defer cancel()

	var chunks []model.ContextChunk
	var err error

	if uc.cfg.RerankEnabled && uc.reranker != nil {
		chunks, err = uc.reranker.RerankedChunks(retrievalCtx, query, RerankTopK)
	} else {
		chunks, err = uc.retriever.Retrieve(retrievalCtx, query, uc.cfg.SearchK)
	}
	if err != nil {
		return "", &assistant.BackendError{Op: "retrieve", Err: err}
	}

	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}

	return strings.Join(texts, ContextSeparator), nil
}
