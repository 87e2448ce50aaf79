package cache

import (
	"context"
	"sync"
	"time"

	"github.com/minhtran/phimhub/internal/domain/catalog"
)

// MemoryPageCache is an in-process TTL cache for latest-movies page results.
// Expiry is evaluated lazily at read time; there is no background sweep.
// Entries are never mutated after Set, so concurrent readers during the TTL
// window observe the same value.
type MemoryPageCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int]memoryEntry
}

type memoryEntry struct {
	value     *catalog.PageResult
	expiresAt time.Time
}

func NewMemoryPageCache(ttl time.Duration) *MemoryPageCache {
	return &MemoryPageCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int]memoryEntry),
	}
}

func (c *MemoryPageCache) Get(ctx context.Context, page int) (*catalog.PageResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[page]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, page)
		return nil, false
	}
	return entry.value, true
}

// Set stores a page result. Two writers racing on the same page resolve by
// last write wins.
func (c *MemoryPageCache) Set(ctx context.Context, page int, result *catalog.PageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[page] = memoryEntry{
		value:     result,
		expiresAt: c.now().Add(c.ttl),
	}
}
