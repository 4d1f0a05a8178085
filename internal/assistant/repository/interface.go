package repository

import (
	"context"

	"bank-policy-assistant/internal/model"
)

// Retriever returns the policy chunks most similar to the query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]model.ContextChunk, error)
}

// Reranker retrieves a wider candidate window and reorders it by
// cross-encoder relevance before cutting to topK.
type Reranker interface {
	RerankedChunks(ctx context.Context, query string, topK int) ([]model.ContextChunk, error)
}

// UserDirectory is the employee record store (Google Sheets).
type UserDirectory interface {
	// GetUser returns nil (not an error) when the username is absent.
	GetUser(ctx context.Context, username string) (*model.UserContext, error)

	// ApplyForLeave decrements the balance by days. It returns false
	// when the application is rejected (insufficient balance) and an
	// error only on backend failure.
	ApplyForLeave(ctx context.Context, username string, days float64) (bool, error)
}
