package corpus

import (
	"context"
	"testing"

	"github.com/kailas-cloud/kbdex/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testCorpus(t *testing.T) *domain.Corpus {
	t.Helper()
	return &domain.Corpus{
		TenantID: "acme",
		Documents: []domain.Document{
			{Title: "Onboarding", URL: "https://kb/onboarding", Content: "how to onboard"},
			{Title: "Billing", URL: "https://kb/billing", Content: "invoices and plans"},
		},
		Vectors: [][]float32{
			{0.1, 0.2, 0.3},
			{0.4, 0.5, 0.6},
		},
		CreatedAt: 1700000000,
	}
}
