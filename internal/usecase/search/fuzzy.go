package search

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// fuzzyThreshold is the minimum partial-ratio score a document must reach,
// over title or content, to survive lexical ranking. 80 is kept, 79 is dropped.
const fuzzyThreshold = 80

// Boost values push strong lexical matches above everything else in fusion.
// An exact title match outranks an exact content match, which outranks a
// title that merely scores higher than the content.
const (
	boostExactTitle   = 200
	boostExactContent = 180
	titleDominance    = 50
)

// rankFuzzy scans the whole corpus and scores every document against the
// query with a partial-substring ratio over both title and content. The query
// must already be lowercased by the caller. Hits are emitted in corpus order;
// ordering is the fusion engine's job.
func rankFuzzy(query string, c *domain.Corpus) []domain.ScoredHit {
	var hits []domain.ScoredHit

	for _, d := range c.Documents {
		scoreTitle := fuzzy.PartialRatio(query, strings.ToLower(d.Title))
		scoreContent := fuzzy.PartialRatio(query, strings.ToLower(d.Content))

		score := scoreTitle
		if scoreContent > score {
			score = scoreContent
		}
		if score < fuzzyThreshold {
			continue
		}

		boosted := float64(score)
		switch {
		case scoreTitle == 100:
			boosted = boostExactTitle
		case scoreContent == 100:
			boosted = boostExactContent
		case scoreTitle > scoreContent:
			boosted = float64(score + titleDominance)
		}

		hits = append(hits, domain.ScoredHit{
			Title:   d.Title,
			URL:     d.URL,
			Snippet: domain.Snippet(d.Content),
			Score:   boosted,
			Source:  domain.SourceFuzzy,
		})
	}

	return hits
}
