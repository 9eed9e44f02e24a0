package formpath

import (
	"container/list"
	"sync"
)

// DefaultCacheSize is the number of parsed paths kept in memory.
const DefaultCacheSize = 512

type cachedPath struct {
	raw  string
	path Path
}

// pathCache is a thread-safe LRU of parsed paths.
// When the cache reaches its capacity, the least recently used path is evicted.
type pathCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	eviction *list.List
}

var paths = newPathCache(DefaultCacheSize)

func newPathCache(capacity int) *pathCache {
	return &pathCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// SetCacheSize changes the capacity of the parse cache, evicting the least
// recently used entries when it shrinks. A size of zero disables caching.
// Negative sizes panic.
func SetCacheSize(n int) {
	if n < 0 {
		panic("formpath: cache size must not be negative")
	}
	paths.mu.Lock()
	defer paths.mu.Unlock()
	paths.capacity = n
	for paths.eviction.Len() > n {
		paths.evictOldest()
	}
}

// CacheLen returns the number of cached paths.
func CacheLen() int {
	paths.mu.Lock()
	defer paths.mu.Unlock()
	return paths.eviction.Len()
}

func (c *pathCache) get(raw string) (Path, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[raw]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cachedPath).path, true
	}
	return nil, false
}

func (c *pathCache) put(raw string, p Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity == 0 {
		return
	}
	if elem, ok := c.items[raw]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cachedPath).path = p
		return
	}

	c.items[raw] = c.eviction.PushFront(&cachedPath{raw: raw, path: p})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *pathCache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*cachedPath).raw)
}
