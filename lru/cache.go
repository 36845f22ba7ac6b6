// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

// Package lru provides a sharded LRU cache whose recency queue is a
// [list.List]. It descends from [github.com/karlseguin/ccache/v3], keeping
// only the simple features (no custom expiry times, no hooks, no tracking,
// etc...) and adding a few adaptations for use as a general-purpose
// building block:
//   - a [Cache.GetOrStore] method to atomically check for existence of an
//     item, creating a new one if needed;
//   - a [Cache.MoveToFront] method to promote items to the front of the
//     recency queue without incurring a deletion operation;
//   - string keys next to integer keys (strings are slotted into buckets by
//     murmur hash);
//   - per-instance capacity, with environment-driven defaults, instead of
//     compile-time constants;
//   - hit/miss/eviction counters, exposed via [Cache.Stats].
package lru

import (
	"context"
	"time"

	"github.com/GabrielCS08/data-structures/internal/config"
	"github.com/GabrielCS08/data-structures/list"
)

// Cache is a sharded LRU cache. All of its methods are safe for concurrent
// use: the backing store is guarded by per-shard locks, and the recency
// queue is owned by a single worker goroutine fed through channels, so the
// queue's list never needs a lock of its own.
type Cache[K Key, V any] struct {
	control                      // Control channel for the [Cache]
	deletables  chan *Item[K, V] // Ask [Cache.worker] to remove an item from the recency queue
	promotables chan *Item[K, V] // Ask [Cache.worker] to move an item to the front of the recency queue
	buckets     []bucket[K, V]   // Buckets for the cache's backing store

	// Maintained by [Cache.worker] only
	recency *list.List[*Item[K, V]] // Recency queue, most recently used at the front

	// Constant for operations
	maxItems   int    // Maximum number of items held in the cache
	pruneBatch int    // Number of items to prune when the cache is full
	bucketMask uint32 // Effectively the shard-bits low bits

	stats stats // Hit/miss/eviction counters
}

// Options configures a [Cache] created with [NewWithOptions]. The zero
// value of each field means "use the default".
type Options struct {
	// MaxItems is the maximum number of items held in the cache. Defaults
	// to the DATA_STRUCTURES_LRU_MAX_ITEMS environment variable, or 4096.
	MaxItems int
	// ShardBits determines the number of buckets the backing store is
	// sharded into (2^ShardBits). Defaults to the
	// DATA_STRUCTURES_LRU_SHARD_BITS environment variable, or 4.
	ShardBits uint8
}

// New creates a new cache with default options and starts its worker
// goroutine. [Cache.Close] must be called after it ceases to be useful so
// that the worker goroutine exits.
func New[K Key, V any]() *Cache[K, V] {
	return NewWithOptions[K, V](Options{})
}

// NewWithOptions creates a new cache with the provided options and starts
// its worker goroutine. [Cache.Close] must be called after it ceases to be
// useful so that the worker goroutine exits.
func NewWithOptions[K Key, V any](opts Options) *Cache[K, V] {
	maxItems := opts.MaxItems
	if maxItems < 1 {
		maxItems = config.LRUMaxItems()
	}
	shardBits := opts.ShardBits
	if shardBits == 0 {
		shardBits = config.LRUShardBits()
	}

	bucketCount := uint32(1) << shardBits

	cache := &Cache[K, V]{
		control: newControl(),
		recency: list.New[*Item[K, V]](),
		buckets: make([]bucket[K, V], bucketCount),
		// If the deletion queue is full, calls to [Cache.Set] will block
		// when replacing values. If the promotion queue is full, promotions
		// are silently skipped.
		deletables:  make(chan *Item[K, V], max(1, maxItems/4)),
		promotables: make(chan *Item[K, V], max(1, maxItems/16)),
		maxItems:    maxItems,
		pruneBatch:  max(1, maxItems/4),
		bucketMask:  bucketCount - 1,
	}

	for i := range bucketCount {
		cache.buckets[i].lookup = make(map[K]*Item[K, V])
	}

	go cache.worker()

	return cache
}

// Get retrieves the [Item] associated with the supplied key. If no such item
// exists, nil is returned. This does not move the item to the front of the
// recency queue.
func (c *Cache[K, V]) Get(key K) *Item[K, V] {
	item := c.bucket(key).get(key)
	if item == nil {
		c.stats.misses.Inc()
	} else {
		c.stats.hits.Inc()
	}
	return item
}

// GetOrStore retrieves the [Item] associated with the supplied key. If no
// such item exists, the value returned by the provided load callback is
// stored, and the new [Item] is returned. Use of the callback allows
// avoiding unnecessary allocations. Existing items are not moved to the
// front of the recency queue, but new items are added at the front of the
// recency queue.
func (c *Cache[K, V]) GetOrStore(key K, load func() V) (*Item[K, V], bool) {
	item, found := c.bucket(key).getOrStore(key, load)
	if !found {
		c.stats.misses.Inc()
		// This is a new item, need to add it ahead of the recency queue
		c.MoveToFront(item)
	} else {
		c.stats.hits.Inc()
	}
	return item, found
}

// MoveToFront moves the supplied item to the front of the recency queue;
// meaning it becomes the last item eligible for pruning. If the promotion
// queue is full, this does nothing and immediately returns false.
func (c *Cache[K, V]) MoveToFront(item *Item[K, V]) bool {
	select {
	case c.promotables <- item:
		// There was space in the queue, so we've successfully registered!
		return true

	default:
		// There was no space in the queue, so we're ignoring this request...
		return false
	}
}

// Set adds or replaces an item in the [Cache], and returns the associated
// [Item]. [Cache.MoveToFront] is called on the returned [Item], promoting
// it to most recently used unless the promotion queue is already full. If
// an existing value is being replaced, its [Item] is added to the deletion
// queue, blocking if it is already full.
func (c *Cache[K, V]) Set(key K, value V) *Item[K, V] {
	item, oldItem := c.bucket(key).set(key, value)
	if oldItem != nil {
		// We replaced an existing item, so need to remove the old one from
		// the recency queue, as it's no longer in store.
		c.deletables <- oldItem
	}
	c.MoveToFront(item)
	return item
}

// bucket returns the bucket associated with the supplied key.
func (c *Cache[K, V]) bucket(key K) *bucket[K, V] {
	slot := slot32(key) & c.bucketMask
	return &c.buckets[slot]
}

// doDelete performs the deletion of the provided [Item]. This must only be
// called from the [Cache.worker] goroutine.
func (c *Cache[K, V]) doDelete(item *Item[K, V]) {
	item.deleted = true
	if item.node == nil {
		// That was already deleted (or never inserted in the first place)
		return
	}
	c.recency.Remove(item.node)
	item.node = nil
}

// doPromote performs the promotion of the provided [Item], placing it ahead
// of the recency queue. This must only be called from the [Cache.worker]
// goroutine. Returns true if the item was added to the recency queue, false
// if it was already there, or has already been evicted.
func (c *Cache[K, V]) doPromote(item *Item[K, V]) bool {
	if item.deleted {
		// Already deleted, not promoting anymore...
		return false
	}

	if item.node != nil {
		// Not a new item, so we just move it to the front of the queue.
		c.recency.MoveToFront(item.node)
		return false
	}

	// New item, so we insert it right at the front of the queue.
	item.node = c.recency.PushFront(item)
	return true
}

// gc prunes old items from the cache, making space for new items. This must
// only be called from the [Cache.worker] goroutine.
func (c *Cache[K, V]) gc() int {
	dropped := 0
	node := c.recency.Back()

	pruneBatch := c.pruneBatch
	if delta := c.recency.Len() - c.maxItems; delta > pruneBatch {
		pruneBatch = delta
	}

	for range pruneBatch {
		if node == nil {
			break
		}

		// Removing the node clears its links, so grab the predecessor first.
		prev := node.Prev()

		item := node.Value
		c.bucket(item.key).delete(item.key)
		item.deleted = true
		c.recency.Remove(node)
		item.node = nil
		dropped++

		node = prev
	}

	c.stats.evictions.Add(int64(dropped))
	return dropped
}

// worker is the goroutine that maintains the cache. It receives from
// [Cache.deletables], [Cache.promotables], and processes messages from
// [Cache.control]. It exits after [Cache.Close] is called; once outstanding
// queued items are processed.
func (c *Cache[K, V]) worker() {
	promoteItem := func(item *Item[K, V]) {
		if c.doPromote(item) && c.recency.Len() > c.maxItems {
			c.gc()
		}
	}

	drain := func(timeout time.Duration) {
		ctx := context.Background()
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		// Start by completely draining the promotion and deletion queues...
		// This is done in an IIFE to make breaking out of the for loop
		// easier.
		func() {
			for {
				select {
				case item := <-c.deletables:
					c.doDelete(item)
				case item := <-c.promotables:
					promoteItem(item)
				default:
					return
				}
			}
		}()

		// Now, continue processing items from the promotion and deletion
		// queues until the context expires.
		for {
			select {
			case item := <-c.deletables:
				c.doDelete(item)
			case item := <-c.promotables:
				promoteItem(item)
			case <-ctx.Done():
				return
			}
		}
	}

	for {
		select {
		case item := <-c.deletables:
			// Actually delete old items from the recency queue
			c.doDelete(item)

		case item := <-c.promotables:
			// Add new items (or move existing items) to the front of the
			// recency queue
			promoteItem(item)

		case ctrl := <-c.control:
			switch ctrl := ctrl.(type) {
			case controlStop:
				// [control.Close] has been called, stop operations...
				drain(ctrl.timeout)
				return // Goroutine exits after draining

			case controlSyncUpdates:
				// [control.syncUpdates] was called, process all pending
				// promotions & deletions synchronously. This is done in an
				// IIFE to make breaking out of that for loop easier.
				func() {
					for {
						select {
						case item := <-c.deletables:
							c.doDelete(item)

						case item := <-c.promotables:
							promoteItem(item)

						default:
							ctrl.done <- struct{}{}
							return
						}
					}
				}()
			}
		}
	}
}
