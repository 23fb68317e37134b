package cms

import (
	"sync"
	"time"
)

const (
	defaultTTL  = 60 * time.Second
	resourceTTL = 300 * time.Second
)

// cache keeps decoded CMS documents per request path. Entries carry the tags
// used by revalidation.
type cache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	doc     any
	tags    []string
	expires time.Time
}

func newCache() *cache {
	return &cache{items: map[string]cacheEntry{}, now: time.Now}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return cloneDoc(entry.doc), true
}

func (c *cache) set(key string, doc any, ttl time.Duration, tags []string) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{
		doc:     cloneDoc(doc),
		tags:    append([]string(nil), tags...),
		expires: c.now().Add(ttl),
	}
}

// revalidate drops every entry carrying one of tags and reports how many
// entries were removed.
func (c *cache) revalidate(tags ...string) int {
	if len(tags) == 0 {
		return 0
	}
	want := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		want[t] = struct{}{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, entry := range c.items {
		for _, t := range entry.tags {
			if _, ok := want[t]; ok {
				delete(c.items, key)
				removed++
				break
			}
		}
	}
	return removed
}

func (c *cache) purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = map[string]cacheEntry{}
	return n
}

func cloneDoc(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneDoc(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneDoc(val)
		}
		return out
	}
	return v
}
