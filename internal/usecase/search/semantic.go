package search

import (
	"math"
	"sort"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// rankSemantic runs a brute-force cosine-similarity scan over the corpus
// vectors and returns the top-K nearest documents as semantic hits, best
// first. Higher similarity is better. Documents without a vector score 0.
func rankSemantic(c *domain.Corpus, queryVec []float32, topK int) []domain.ScoredHit {
	if len(queryVec) == 0 || topK <= 0 {
		return nil
	}

	type cand struct {
		idx   int
		score float64
	}
	cands := make([]cand, 0, c.Len())
	for i := range c.Documents {
		var vec []float32
		if i < len(c.Vectors) {
			vec = c.Vectors[i]
		}
		cands = append(cands, cand{idx: i, score: cosineSimilarity(queryVec, vec)})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})
	if len(cands) > topK {
		cands = cands[:topK]
	}

	hits := make([]domain.ScoredHit, len(cands))
	for i, cd := range cands {
		d := c.Documents[cd.idx]
		hits[i] = domain.ScoredHit{
			Title:   d.Title,
			URL:     d.URL,
			Snippet: domain.Snippet(d.Content),
			Score:   cd.score,
			Source:  domain.SourceSemantic,
		}
	}
	return hits
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths are compared over the shorter prefix; zero vectors
// yield 0.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
