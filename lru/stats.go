// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package lru

import (
	"go.uber.org/atomic"
)

// stats holds the cache's effectiveness counters. Hits and misses are
// bumped from caller goroutines, evictions from the worker goroutine, hence
// the atomics.
type stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Stats is a point-in-time snapshot of a [Cache]'s counters.
type Stats struct {
	// Hits is the number of lookups that found an item in the store.
	Hits int64
	// Misses is the number of lookups that found nothing.
	Misses int64
	// Evictions is the number of items pruned from the cache to make room
	// for newer ones. Items dropped by [Cache.Set] replacements are not
	// counted.
	Evictions int64
}

// Stats returns a snapshot of the cache's hit/miss/eviction counters. The
// eviction count lags behind mutations until the worker goroutine catches
// up with the promotion queue.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.stats.hits.Load(),
		Misses:    c.stats.misses.Load(),
		Evictions: c.stats.evictions.Load(),
	}
}
