package ingest

import (
	"context"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// CorpusWriter replaces a tenant's snapshot in storage.
type CorpusWriter interface {
	Replace(ctx context.Context, c *domain.Corpus) error
}

// BatchEmbedder vectorizes document contents in bulk.
type BatchEmbedder interface {
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}
