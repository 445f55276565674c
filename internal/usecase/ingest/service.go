package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// Service handles corpus uploads with automatic vectorization.
type Service struct {
	repo     CorpusWriter
	embedder BatchEmbedder
}

// New creates an ingest service.
func New(repo CorpusWriter, embedder BatchEmbedder) *Service {
	return &Service{repo: repo, embedder: embedder}
}

// Upload vectorizes the documents and atomically replaces the tenant's
// corpus snapshot. Returns the number of documents ingested.
func (s *Service) Upload(ctx context.Context, tenantID string, docs []domain.Document) (int, error) {
	if tenantID == "" {
		return 0, fmt.Errorf("tenant id is required: %w", domain.ErrInvalidInput)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("docs must be a non-empty list: %w", domain.ErrInvalidInput)
	}

	normalized := make([]domain.Document, len(docs))
	texts := make([]string, len(docs))
	for i, d := range docs {
		normalized[i] = d.Normalize()
		texts[i] = normalized[i].Content
	}

	result, err := s.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("vectorize corpus: %w", err)
	}
	if len(result.Embeddings) != len(normalized) {
		return 0, fmt.Errorf(
			"vectorize corpus: got %d vectors for %d docs: %w",
			len(result.Embeddings), len(normalized), domain.ErrEmbeddingProviderError,
		)
	}

	domain.UsageFromContext(ctx).AddTokens(result.TotalTokens)

	c := &domain.Corpus{
		TenantID:  tenantID,
		Documents: normalized,
		Vectors:   result.Embeddings,
		CreatedAt: time.Now().UTC().UnixMilli(),
	}

	if err := s.repo.Replace(ctx, c); err != nil {
		return 0, fmt.Errorf("replace corpus: %w", err)
	}

	return len(normalized), nil
}
