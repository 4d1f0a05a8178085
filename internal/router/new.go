package router

import (
	"bank-policy-assistant/pkg/log"
)

// Router classifies a user message into an intent.
type Router interface {
	Classify(query string) Intent
}

// KeywordRouter classifies user intent with keyword matching. It is
// deterministic and makes no network calls, so every message routes in
// constant time regardless of LLM availability.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
	}
}
