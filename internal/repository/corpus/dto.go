package corpus

import (
	"encoding/binary"
	"math"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// snapshot is the JSON shape stored under one key per tenant.
// Vectors are serialized as little-endian float32 blobs (base64 in JSON).
type snapshot struct {
	TenantID  string   `json:"tenant_id"`
	Documents []docDTO `json:"documents"`
	Vectors   [][]byte `json:"vectors,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

type docDTO struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

func buildSnapshot(c *domain.Corpus) snapshot {
	docs := make([]docDTO, len(c.Documents))
	for i, d := range c.Documents {
		docs[i] = docDTO{Title: d.Title, URL: d.URL, Content: d.Content}
	}
	vecs := make([][]byte, len(c.Vectors))
	for i, v := range c.Vectors {
		vecs[i] = vectorToBytes(v)
	}
	return snapshot{
		TenantID:  c.TenantID,
		Documents: docs,
		Vectors:   vecs,
		CreatedAt: c.CreatedAt,
	}
}

func parseSnapshot(s snapshot) *domain.Corpus {
	docs := make([]domain.Document, len(s.Documents))
	for i, d := range s.Documents {
		docs[i] = domain.Document{Title: d.Title, URL: d.URL, Content: d.Content}
	}
	vecs := make([][]float32, len(s.Vectors))
	for i, b := range s.Vectors {
		vecs[i] = bytesToVector(b)
	}
	return &domain.Corpus{
		TenantID:  s.TenantID,
		Documents: docs,
		Vectors:   vecs,
		CreatedAt: s.CreatedAt,
	}
}

// vectorToBytes serializes []float32 to bytes (4 bytes per float, little-endian).
func vectorToBytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToVector deserializes bytes back to []float32.
func bytesToVector(b []byte) []float32 {
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
