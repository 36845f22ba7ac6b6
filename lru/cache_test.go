// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package lru

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		t.Run("Miss", func(t *testing.T) {
			cache := New[int, int]()
			defer cache.Close()

			assert.Nil(t, cache.Get(1337))
		})

		t.Run("Hit", func(t *testing.T) {
			cache := New[int, int]()
			defer cache.Close()

			setItem := cache.Set(1337, 42)

			getItem := cache.Get(1337)
			require.NotNil(t, getItem)
			require.Equal(t, setItem, getItem)
		})
	})

	t.Run("GetOrStore", func(t *testing.T) {
		cache := New[int, int]()
		defer cache.Close()

		item, found := cache.GetOrStore(1337, func() int { return 42 })
		require.NotNil(t, item)
		assert.False(t, found)
		assert.Equal(t, 42, item.Value())

		item, found = cache.GetOrStore(1337, func() int { return -58008 })
		require.NotNil(t, item)
		assert.True(t, found)
		assert.Equal(t, 42, item.Value())
	})

	t.Run("Set", func(t *testing.T) {
		cache := New[int, int]()
		defer cache.Close()

		item := cache.Set(1337, 42)
		require.NotNil(t, item)
		assert.Equal(t, 1337, item.Key())
		assert.Equal(t, 42, item.Value())

		t.Run("Overwrite", func(t *testing.T) {
			item := cache.Set(1337, -58008)
			require.NotNil(t, item)
			assert.Equal(t, 1337, item.Key())
			assert.Equal(t, -58008, item.Value())
		})
	})

	t.Run("StringKeys", func(t *testing.T) {
		cache := NewWithOptions[string, int](Options{MaxItems: 64, ShardBits: 2})
		defer cache.Close()

		cache.Set("elite", 1337)
		cache.Set("leet", 31337)

		item := cache.Get("elite")
		require.NotNil(t, item)
		assert.Equal(t, 1337, item.Value())

		item, found := cache.GetOrStore("leet", func() int { return -1 })
		require.NotNil(t, item)
		assert.True(t, found)
		assert.Equal(t, 31337, item.Value())

		assert.Nil(t, cache.Get("unknown"))
	})

	t.Run("MoveToFront", func(t *testing.T) {
		cache := NewWithOptions[int, int](Options{MaxItems: 256})
		defer cache.Close()

		var item0 *Item[int, int]
		for i := range cache.maxItems + cache.pruneBatch {
			item := cache.Set(i, i)
			if i == 0 {
				item0 = item
				continue
			}
			// Keep the item 0 atop the freshness queue. Syncing on every
			// round keeps the promotion buffer from ever filling up, which
			// would silently drop the promotion.
			cache.MoveToFront(item0)
			cache.syncUpdates()
		}

		item := cache.Get(0)
		assert.Equal(t, item0, item)
	})

	t.Run("Close", func(t *testing.T) {
		cache := NewWithOptions[int, int](Options{MaxItems: 128})

		var (
			goroutineCount = runtime.GOMAXPROCS(0) * 10
			barrier        sync.WaitGroup
			closeChan      = make(chan struct{})
			wg             sync.WaitGroup
		)
		barrier.Add(goroutineCount + 1)
		for range goroutineCount {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Synchronize the start of all the goroutines
				barrier.Done()
				barrier.Wait()

				for {
					// Check whether this is our last action or not... This is
					// done this way to ensure we slot one more request after
					// the cache has been closed before stopping to issue new
					// requests.
					var exit bool
					select {
					case <-closeChan:
						exit = true
					default:
						// Don't wait
					}

					key := rand.Intn(2 * cache.maxItems)
					switch rand.Intn(3) {
					case 0:
						_ = cache.Set(key, key)
					case 1:
						_ = cache.Get(key)
					case 2:
						_, _ = cache.GetOrStore(key, func() int { return key })
					}

					if exit {
						return
					}
				}
			}()
		}
		barrier.Done()

		// In a few milliseconds, close the cache, and let further requests
		// proceed...
		time.Sleep(10 * time.Millisecond)
		cache.Close()
		close(closeChan)

		// Wait until all goroutines have finished...
		wg.Wait()
	})

	t.Run("gc", func(t *testing.T) {
		cache := NewWithOptions[int, int](Options{MaxItems: 256})
		defer cache.Close()

		// Insert more items than are allowed to be retained...
		for i := range cache.maxItems + cache.pruneBatch {
			_ = cache.Set(i, i)
			if i%(cap(cache.promotables)/2) == 0 {
				// Make sure we don't cause the promotion buffer to become full...
				cache.syncUpdates()
			}
		}

		// Wait for all pending promotes/deletes to have been flushed
		cache.syncUpdates()

		// Now, verify only the most recent maxItems items are in the cache...
		for i := range cache.maxItems + cache.pruneBatch {
			item := cache.bucket(i).get(i)
			if i < cache.pruneBatch {
				assert.Nil(t, item, "item %d should have been pruned", i)
				continue
			}
			require.NotNil(t, item, "item %d should not have been pruned", i)
			assert.Equal(t, i, item.Value())
		}
	})

	t.Run("Stats", func(t *testing.T) {
		cache := NewWithOptions[int, int](Options{MaxItems: 4, ShardBits: 1})
		defer cache.Close()

		assert.Nil(t, cache.Get(1))
		assert.Equal(t, Stats{Misses: 1}, cache.Stats())

		cache.Set(1, 1)
		cache.syncUpdates()
		require.NotNil(t, cache.Get(1))
		assert.Equal(t, Stats{Hits: 1, Misses: 1}, cache.Stats())

		// Overflow the cache by one item to force an eviction.
		for i := 2; i <= 5; i++ {
			cache.Set(i, i)
			cache.syncUpdates()
		}
		assert.Equal(t, int64(1), cache.Stats().Evictions)
	})
}

func TestOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cache := New[int, int]()
		defer cache.Close()

		assert.Equal(t, 4_096, cache.maxItems)
		assert.Len(t, cache.buckets, 16)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("DATA_STRUCTURES_LRU_MAX_ITEMS", "128")
		t.Setenv("DATA_STRUCTURES_LRU_SHARD_BITS", "2")

		cache := New[int, int]()
		defer cache.Close()

		assert.Equal(t, 128, cache.maxItems)
		assert.Len(t, cache.buckets, 4)
	})

	t.Run("Explicit", func(t *testing.T) {
		cache := NewWithOptions[int, int](Options{MaxItems: 32, ShardBits: 3})
		defer cache.Close()

		assert.Equal(t, 32, cache.maxItems)
		assert.Equal(t, 8, cache.pruneBatch)
		assert.Len(t, cache.buckets, 8)
	})
}
