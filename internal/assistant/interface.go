package assistant

import (
	"context"

	"bank-policy-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// HandleQuery routes the query to the right flow (leave commands,
	// canned replies, or policy retrieval plus LLM synthesis) and
	// returns the final user-facing reply. The only error it returns is
	// ErrEmptyQuery; every other failure is formatted into the reply.
	HandleQuery(ctx context.Context, query string, user model.UserContext) (Output, error)
}
