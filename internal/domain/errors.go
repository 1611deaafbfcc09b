package domain

import "errors"

var (
	// ErrIndexUnavailable signals that the candidate index could not serve a query.
	// It aborts the whole search, including any pending escalation attempts.
	ErrIndexUnavailable = errors.New("candidate index unavailable")
	// ErrInvalidRequest signals malformed search parameters.
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
