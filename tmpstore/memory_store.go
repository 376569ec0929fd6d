package tmpstore

import (
	"context"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/puzpuzpuz/xsync/v2"
)

type memoryEntry struct {
	nodes     []entity.Node
	expiresAt time.Time // zero means no expiration
}

// MemoryStore is the in-process Store, used when no Redis is configured.
// Expired entries are dropped when read, or by Purge.
type MemoryStore struct {
	entries *xsync.MapOf[string, memoryEntry]
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: xsync.NewMapOf[memoryEntry](),
		now:     time.Now,
	}
}

func (store *MemoryStore) GetNodes(_ context.Context, key string) ([]entity.Node, error) {
	entry, ok := store.entries.Load(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	if store.expired(entry) {
		store.entries.Delete(key)
		return nil, ErrCacheMiss
	}

	return entry.nodes, nil
}

func (store *MemoryStore) SaveNodes(_ context.Context, key string, nodes []entity.Node, ttl time.Duration) error {
	entry := memoryEntry{nodes: append([]entity.Node(nil), nodes...)}
	if ttl > 0 {
		entry.expiresAt = store.now().Add(ttl)
	}

	store.entries.Store(key, entry)
	return nil
}

// Purge removes all the expired entries and returns how many were removed.
func (store *MemoryStore) Purge() int {
	removed := 0
	store.entries.Range(func(key string, entry memoryEntry) bool {
		if store.expired(entry) {
			store.entries.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len returns the number of entries, the expired ones included.
func (store *MemoryStore) Len() int {
	return store.entries.Size()
}

func (store *MemoryStore) Close() error {
	store.entries.Clear()
	return nil
}

func (store *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !store.now().Before(entry.expiresAt)
}

// RunJanitor purges the expired entries every interval until the ctx is done.
func (store *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Purge()
		}
	}
}
