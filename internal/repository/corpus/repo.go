package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/kbdex/internal/db"
	"github.com/kailas-cloud/kbdex/internal/domain"
)

// store is the consumer interface for corpus snapshots (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo persists one immutable corpus snapshot per tenant. A full SET of the
// serialized snapshot makes upload an atomic replace and reads lock-free.
type Repo struct {
	store store
}

// New creates a corpus repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Replace overwrites the tenant's snapshot with a new one.
func (r *Repo) Replace(ctx context.Context, c *domain.Corpus) error {
	key := corpusKey(c.TenantID)
	data, err := json.Marshal(buildSnapshot(c))
	if err != nil {
		return fmt.Errorf("marshal corpus %s: %w", c.TenantID, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Get returns the tenant's current snapshot.
func (r *Repo) Get(ctx context.Context, tenantID string) (*domain.Corpus, error) {
	key := corpusKey(tenantID)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal corpus %s: %w", tenantID, err)
	}
	return parseSnapshot(s), nil
}

func corpusKey(tenantID string) string {
	return fmt.Sprintf("%scorpus:%s", domain.KeyPrefix, tenantID)
}
