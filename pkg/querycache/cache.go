// Package querycache memoizes query results keyed by their parameters.
// Concurrent loads of one key share a single call, and invalidating a key
// discards both the stored value and any load still in flight.
package querycache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// maxAttempts bounds reloads of a key that keeps being invalidated.
const maxAttempts = 3

type entry struct {
	value   any
	expires time.Time
}

type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu          sync.Mutex
	entries     map[string]entry
	generations map[string]uint64
}

// New returns a cache whose entries live for ttl. A non-positive ttl disables
// storage; loads are still coalesced.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]entry),
		generations: make(map[string]uint64),
	}
}

// Get returns the cached value for key, calling load on a miss. A load that
// was superseded by Invalidate while running is not stored, and its callers
// load again.
func Get[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if v, ok := c.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	var (
		v   any
		err error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		gen := c.generation(key)
		v, err, _ = c.group.Do(flightKey(key, gen), func() (any, error) {
			value, err := load(ctx)
			if err != nil {
				return nil, err
			}
			c.store(key, gen, value)
			return value, nil
		})
		if err != nil {
			return zero, err
		}
		if c.generation(key) == gen || ctx.Err() != nil {
			break
		}
	}
	typed, _ := v.(T)
	return typed, nil
}

// Invalidate drops key so the next Get reloads it.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.generations[key]++
}

// InvalidatePrefix drops every key starting with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make(map[string]bool)
	for key := range c.entries {
		keys[key] = true
	}
	for key := range c.generations {
		keys[key] = true
	}
	for key := range keys {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			c.generations[key]++
		}
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Before(e.expires) {
			n++
		}
	}
	return n
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, gen uint64, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key] != gen {
		return
	}
	c.entries[key] = entry{value: value, expires: c.now().Add(c.ttl)}
}

func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

func flightKey(key string, gen uint64) string {
	return key + "#" + strconv.FormatUint(gen, 10)
}
