// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package lru

import (
	"github.com/GabrielCS08/data-structures/list"
)

// Item is an entry in the cache; tracking a key and value together with the
// necessary state.
type Item[K Key, V any] struct {
	node    *list.Node[*Item[K, V]] // The recency queue node for this item (if it's in the queue)
	key     K                       // The key of this item
	value   V                       // The value of this item
	deleted bool                    // True if the item was deleted already
}

// newItem initializes a new [Item] with the given key and value.
func newItem[K Key, V any](key K, value V) *Item[K, V] {
	return &Item[K, V]{
		key:   key,
		value: value,
	}
}

// Key returns the key associated with this [Item].
func (i *Item[K, V]) Key() K {
	return i.key
}

// Value returns the value associated with this [Item].
func (i *Item[K, V]) Value() V {
	return i.value
}
