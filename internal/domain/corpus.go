package domain

// Corpus is an immutable per-tenant snapshot of documents and their embedding
// vectors. An upload builds a complete new snapshot and swaps it in atomically;
// readers holding the previous snapshot are never disturbed. Vectors[i] is the
// embedding of Documents[i].Content.
type Corpus struct {
	TenantID  string
	Documents []Document
	Vectors   [][]float32
	CreatedAt int64 // unix milliseconds
}

// Len returns the number of documents in the snapshot.
func (c *Corpus) Len() int { return len(c.Documents) }
