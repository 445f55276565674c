package domain

import "errors"

var (
	// ErrTenantNotFound signals a search against a tenant with no uploaded corpus.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrInvalidInput signals a malformed upload or search request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmbeddingQuotaExceeded signals an exhausted embedding budget.
	ErrEmbeddingQuotaExceeded = errors.New("embedding quota exceeded")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRateLimited signals the request was rejected due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)
