package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// Service answers tenant search queries by fusing lexical and semantic
// rankings over the tenant's corpus snapshot.
type Service struct {
	repo       CorpusReader
	embed      Embedder
	topK       int
	maxResults int
}

// New creates a search service. topK bounds the semantic candidate list,
// maxResults bounds the final fused list.
func New(repo CorpusReader, embed Embedder, topK, maxResults int) *Service {
	return &Service{repo: repo, embed: embed, topK: topK, maxResults: maxResults}
}

// Search runs both matchers over the tenant's corpus and fuses the results.
// The query must already be lowercased by the caller. An unknown tenant is an
// error; an empty result list is a successful outcome.
func (s *Service) Search(ctx context.Context, tenantID, query string) ([]domain.ScoredHit, error) {
	c, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get corpus: %w", err)
	}

	fuzzyHits := rankFuzzy(query, c)

	embResult, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	domain.UsageFromContext(ctx).AddTokens(embResult.TotalTokens)

	semanticHits := rankSemantic(c, embResult.Embedding, s.topK)

	return fuse(fuzzyHits, semanticHits, s.maxResults), nil
}
