package qdrant

import (
	"context"
	"fmt"

	"bank-policy-assistant/internal/assistant/repository"
	"bank-policy-assistant/internal/model"
	pkgLog "bank-policy-assistant/pkg/log"
	pkgQdrant "bank-policy-assistant/pkg/qdrant"
	"bank-policy-assistant/pkg/voyage"
)

type implRetriever struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed policy retriever.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.Retriever {
	return &implRetriever{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// Retrieve embeds the query and returns the topK most similar policy chunks.
func (r *implRetriever) Retrieve(ctx context.Context, query string, topK int) ([]model.ContextChunk, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant retriever: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}
	queryVector := vectors[0]

	searchReq := pkgQdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       topK,
		WithPayload: true, // payload carries the chunk text
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, searchReq)
	if err != nil {
		r.l.Errorf(ctx, "qdrant retriever: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	chunks := make([]model.ContextChunk, 0, len(resp.Result))
	for _, scored := range resp.Result {
		textRaw, exists := scored.Payload["text"]
		if !exists {
			r.l.Warnf(ctx, "qdrant retriever: text missing in payload for point %v, skipping", scored.ID)
			continue
		}
		text, ok := textRaw.(string)
		if !ok || text == "" {
			r.l.Warnf(ctx, "qdrant retriever: malformed text payload for point %v, skipping", scored.ID)
			continue
		}

		chunks = append(chunks, model.ContextChunk{
			Text:  text,
			Score: scored.Score,
		})
	}

	r.l.Debugf(ctx, "qdrant retriever: retrieved %d chunks for query", len(chunks))
	return chunks, nil
}
