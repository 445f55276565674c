package search

import (
	"sort"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// fuse merges fuzzy and semantic hits into one bounded, url-deduplicated
// list. Fuzzy hits fill first in descending score order; semantic hits only
// backfill the remaining slots when the fuzzy side under-delivers in count or
// strength. The two score spaces are never normalized against each other and
// the merged list is not re-sorted, so fuzzy entries always precede semantic
// ones.
func fuse(fuzzyHits, semanticHits []domain.ScoredHit, maxResults int) []domain.ScoredHit {
	sort.SliceStable(fuzzyHits, func(i, j int) bool {
		return fuzzyHits[i].Score > fuzzyHits[j].Score
	})

	results := make([]domain.ScoredHit, 0, maxResults)
	seen := make(map[string]bool)

	for _, h := range fuzzyHits {
		if len(results) >= maxResults {
			break
		}
		if seen[h.URL] {
			continue
		}
		seen[h.URL] = true
		results = append(results, h)
	}

	// Max over all fuzzy hits, kept or not. With the ranker's threshold any
	// existing fuzzy hit scores at least 80, so the strength clause below
	// only fires when there were no fuzzy hits at all; it is still evaluated
	// to keep that zero-hit case on the same path.
	var maxFuzzy float64
	for _, h := range fuzzyHits {
		if h.Score > maxFuzzy {
			maxFuzzy = h.Score
		}
	}

	if len(results) < maxResults || maxFuzzy < fuzzyThreshold {
		sort.SliceStable(semanticHits, func(i, j int) bool {
			return semanticHits[i].Score > semanticHits[j].Score
		})
		for _, h := range semanticHits {
			if len(results) >= maxResults {
				break
			}
			if seen[h.URL] {
				continue
			}
			seen[h.URL] = true
			results = append(results, h)
		}
	}

	return results
}
