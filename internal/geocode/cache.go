package geocode

import (
	"context"
	"sync"
)

// Cache is the single shared mutable structure in the pipeline. It
// guarantees that for one normalized address at most one outbound
// geocode call is in flight: the first caller owns the lookup, later
// callers for the same key block on it and share the outcome (including
// the failure: a dead address is not retried within the run).
type Cache struct {
	mu sync.Mutex
	m  map[string]*cacheEntry
}

type cacheEntry struct {
	ready chan struct{}
	res   Result
	err   error
}

func NewCache() *Cache {
	return &Cache{m: make(map[string]*cacheEntry)}
}

// Do returns the cached outcome for key, running fn exactly once per key.
func (c *Cache) Do(ctx context.Context, key string, fn func(ctx context.Context) (Result, error)) (Result, error) {
	c.mu.Lock()
	if e, ok := c.m[key]; ok {
		c.mu.Unlock()
		select {
		case <-e.ready:
			return e.res, e.err
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	e := &cacheEntry{ready: make(chan struct{})}
	c.m[key] = e
	c.mu.Unlock()

	e.res, e.err = fn(ctx)
	close(e.ready)
	return e.res, e.err
}

// Len reports the number of distinct keys looked up so far.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
