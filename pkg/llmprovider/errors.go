package llmprovider

import "errors"

var (
	// ErrAllProvidersFailed indicates every provider in the chain failed
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")
)
