package neo

import (
	"context"
	"strings"
	"sync"

	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
)

// CachedCatalog wraps a Catalog with an in-memory LRU cache. Catalog data
// changes on the order of days, so a small cache absorbs repeated lookups
// of the same object during an interactive session.
type CachedCatalog struct {
	inner   domain.Catalog
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedCatalog creates a cache decorator around a catalog.
func NewCachedCatalog(inner domain.Catalog, maxEntries int, metrics *observability.Metrics) *CachedCatalog {
	return &CachedCatalog{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedCatalog) Lookup(ctx context.Context, id string) (domain.CatalogRecord, error) {
	key := "id:" + id
	if rec, ok := c.cache.get(key); ok {
		c.metrics.CatalogCache.WithLabelValues("lookup", "hit").Inc()
		return rec, nil
	}
	c.metrics.CatalogCache.WithLabelValues("lookup", "miss").Inc()

	rec, err := c.inner.Lookup(ctx, id)
	if err != nil {
		return rec, err
	}
	c.put(rec, key)
	return rec, nil
}

func (c *CachedCatalog) SearchByName(ctx context.Context, name string, maxPages int) (domain.CatalogRecord, error) {
	key := "name:" + strings.ToLower(strings.TrimSpace(name))
	if rec, ok := c.cache.get(key); ok {
		c.metrics.CatalogCache.WithLabelValues("search", "hit").Inc()
		return rec, nil
	}
	c.metrics.CatalogCache.WithLabelValues("search", "miss").Inc()

	rec, err := c.inner.SearchByName(ctx, name, maxPages)
	if err != nil {
		return rec, err
	}
	// A name hit also warms the ID key, so a follow-up Lookup is free.
	c.put(rec, key, "id:"+rec.ID)
	return rec, nil
}

// put caches a record under the given keys. Only resolved records are
// cached so transient empty responses can be retried.
func (c *CachedCatalog) put(rec domain.CatalogRecord, keys ...string) {
	if rec.ID == "" {
		return
	}
	for _, key := range keys {
		c.cache.put(key, rec)
	}
}

// lruCache is a simple thread-safe LRU cache for catalog records.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.CatalogRecord
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.CatalogRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.CatalogRecord{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.CatalogRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
