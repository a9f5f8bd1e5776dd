// Package cache memoizes rendered pages for a fixed time window.
//
// Entries are never invalidated by writes to the database: a cached page stays as it was
// rendered until it expires or the cache is cleared.
package cache

import (
	"net/http"
	"sort"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type Entry struct {
	Status      int
	ContentType string
	Body        []byte
	ExpiresAt   time.Time
}

// PageCache stores rendered pages by key
type PageCache interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry)
	Clear()
}

// DefaultMaxEntries bounds the pages kept by NewMemoryCache
const DefaultMaxEntries = 1000

// MemoryCache is an in-process PageCache. Entries are replaced wholesale, never modified.
// Once MaxEntries are held, Set drops the expired entries and then the ones closest to expiry.
type MemoryCache struct {
	TTL        time.Duration
	MaxEntries int
	Now        func() time.Time
	entries    cmap.ConcurrentMap[string, Entry]
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		TTL:        ttl,
		MaxEntries: DefaultMaxEntries,
		Now:        time.Now,
		entries:    cmap.New[Entry](),
	}
}

// remove deletes key unless it was replaced after entry was read
func (m *MemoryCache) remove(key string, entry Entry) {
	m.entries.RemoveCb(key, func(_ string, current Entry, exists bool) bool {
		return exists && current.ExpiresAt.Equal(entry.ExpiresAt)
	})
}

func (m *MemoryCache) Get(key string) (Entry, bool) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return Entry{}, false
	}
	if !m.Now().Before(entry.ExpiresAt) {
		m.remove(key, entry)
		return Entry{}, false
	}
	return entry, true
}

// Set stores the entry, it expires TTL from now
func (m *MemoryCache) Set(key string, entry Entry) {
	if entry.Status == 0 {
		entry.Status = http.StatusOK
	}
	now := m.Now()
	if m.MaxEntries > 0 && !m.entries.Has(key) && m.entries.Count() >= m.MaxEntries {
		m.evict(now)
	}
	entry.ExpiresAt = now.Add(m.TTL)
	m.entries.Set(key, entry)
}

// evict makes room for one more entry
func (m *MemoryCache) evict(now time.Time) {
	live := make([]cmap.Tuple[string, Entry], 0, m.MaxEntries)
	for item := range m.entries.IterBuffered() {
		if now.Before(item.Val.ExpiresAt) {
			live = append(live, item)
		} else {
			m.remove(item.Key, item.Val)
		}
	}
	if excess := len(live) - m.MaxEntries + 1; excess > 0 {
		sort.Slice(live, func(i, j int) bool {
			return live[i].Val.ExpiresAt.Before(live[j].Val.ExpiresAt)
		})
		for _, item := range live[:excess] {
			m.remove(item.Key, item.Val)
		}
	}
}

func (m *MemoryCache) Clear() {
	m.entries.Clear()
}

func (m *MemoryCache) Len() int {
	return m.entries.Count()
}
