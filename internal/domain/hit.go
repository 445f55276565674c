package domain

// Source identifies which matcher produced a hit.
type Source string

const (
	// SourceFuzzy marks hits produced by the lexical ranker.
	SourceFuzzy Source = "fuzzy"
	// SourceSemantic marks hits produced by the embedding matcher.
	SourceSemantic Source = "semantic"
)

// SnippetLength is the number of leading content bytes carried into a hit.
const SnippetLength = 200

// ScoredHit is a transient per-query search result entry. Hits are never
// persisted; the fuzzy and semantic score spaces are intentionally disjoint
// and are not comparable across sources.
type ScoredHit struct {
	Title   string
	URL     string
	Snippet string
	Score   float64
	Source  Source
}

// Snippet truncates content to the first SnippetLength bytes, with no
// word-boundary adjustment.
func Snippet(content string) string {
	if len(content) > SnippetLength {
		return content[:SnippetLength]
	}
	return content
}
