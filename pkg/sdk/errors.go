package kbdex

import (
	"fmt"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrTenantNotFound         = domain.ErrTenantNotFound
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrRateLimited            = domain.ErrRateLimited
	ErrEmbeddingQuotaExceeded = domain.ErrEmbeddingQuotaExceeded
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)

// APIError is a structured error response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kbdex: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Unwrap maps the service error code back to a sentinel error so callers can
// use errors.Is without inspecting codes.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "tenant_not_found":
		return ErrTenantNotFound
	case "invalid_input":
		return ErrInvalidInput
	case "rate_limited":
		return ErrRateLimited
	case "embedding_quota_exceeded":
		return ErrEmbeddingQuotaExceeded
	case "embedding_provider_error":
		return ErrEmbeddingProviderError
	default:
		return nil
	}
}
