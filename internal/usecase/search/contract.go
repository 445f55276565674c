package search

import (
	"context"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// CorpusReader loads a tenant's corpus snapshot.
type CorpusReader interface {
	Get(ctx context.Context, tenantID string) (*domain.Corpus, error)
}

// Embedder vectorizes the query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
