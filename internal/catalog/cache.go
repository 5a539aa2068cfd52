package catalog

// In-process read cache for catalog fetches. Keys are normalized records of
// what was asked for; invalidation works on explicit scopes rather than on
// individual keys, so a mutation wipes every related entry in one call.

import (
	"sync"
	"time"
)

type cacheKind string

const (
	kindBookList   cacheKind = "book-list"
	kindBookDetail cacheKind = "book-detail"
	kindGenreList  cacheKind = "genre-list"
)

// cacheKey identifies one cached fetch. For lists, query is the normalized
// query string, so two Params encoding identically share an entry.
type cacheKey struct {
	kind  cacheKind
	id    string
	query string
}

// Scope names a set of cache entries invalidated together.
type Scope struct {
	kind cacheKind
	id   string
	all  bool
}

// ScopeAllBooks covers every book list and detail entry. All four book
// mutations use it: precision is traded for the guarantee that no stale list
// survives a create, edit, or delete.
func ScopeAllBooks() Scope {
	return Scope{all: true}
}

// ScopeBookLists covers list entries only.
func ScopeBookLists() Scope {
	return Scope{kind: kindBookList}
}

// ScopeBookDetail covers the detail entry of one book.
func ScopeBookDetail(id string) Scope {
	return Scope{kind: kindBookDetail, id: id}
}

func (s Scope) matches(key cacheKey) bool {
	if s.all {
		return key.kind == kindBookList || key.kind == kindBookDetail
	}
	if s.kind != key.kind {
		return false
	}
	return s.id == "" || s.id == key.id
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

type cache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

func newCache() *cache {
	return &cache{
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

func (c *cache) get(key cacheKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *cache) put(key cacheKey, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *cache) invalidate(scope Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if scope.matches(key) {
			delete(c.entries, key)
		}
	}
}
